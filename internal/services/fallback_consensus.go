package services

import (
	"fmt"
	"strings"

	"hopa/internal/models/request_models"
	"hopa/internal/models/response_models"
)

// Canned consensus plans are assembled from fragments rather than served as
// one static object: the branch on duration and mood keeps the fallback
// plausible for the scenario the group actually entered.

type consensusMood struct {
	keywords  []string
	morning   response_models.ConsensusActivity
	afternoon response_models.ConsensusActivity
	rhythm    string
	objective string
}

var consensusMoods = []consensusMood{
	{
		keywords: []string{"冒险", "刺激", "徒步", "adventure", "hiking"},
		morning: response_models.ConsensusActivity{
			Time:        "09:00-12:00",
			Activity:    "户外徒步",
			Description: "选一条成熟的徒步路线,强度按体力最弱的成员定。",
		},
		afternoon: response_models.ConsensusActivity{
			Time:        "14:00-17:00",
			Activity:    "体验项目",
			Description: "挑一个大家都没玩过的体验项目,比如攀岩或皮划艇。",
		},
		rhythm:    "节奏偏紧凑,上下午各安排一个主活动,中午充分休整",
		objective: "一起完成一件有挑战的事",
	},
	{
		keywords: []string{"放松", "休闲", "慢", "relax"},
		morning: response_models.ConsensusActivity{
			Time:        "10:00-12:00",
			Activity:    "公园散步",
			Description: "晚一点出发,在公园或江边慢慢走,边走边聊。",
		},
		afternoon: response_models.ConsensusActivity{
			Time:        "14:30-17:00",
			Activity:    "咖啡馆小坐",
			Description: "找一家评价好的咖啡馆,留出不赶时间的自由聊天时段。",
		},
		rhythm:    "节奏宽松,只定两个锚点,其余时间自由",
		objective: "放松心情,高质量地待在一起",
	},
	{
		keywords: []string{"浪漫", "纪念", "约会", "romance"},
		morning: response_models.ConsensusActivity{
			Time:        "10:00-12:00",
			Activity:    "展览或美术馆",
			Description: "选一个安静的展览,人少、适合两个人慢慢看。",
		},
		afternoon: response_models.ConsensusActivity{
			Time:        "16:00-19:00",
			Activity:    "日落晚餐",
			Description: "提前订一家有景观位的餐厅,卡着日落时间入座。",
		},
		rhythm:    "节奏舒缓,重点留给晚上的正餐",
		objective: "制造值得记住的共同回忆",
	},
}

var defaultConsensusMood = consensusMood{
	morning: response_models.ConsensusActivity{
		Time:        "09:30-12:00",
		Activity:    "主景点游览",
		Description: "上午精力最好,先去大家呼声最高的那个地方。",
	},
	afternoon: response_models.ConsensusActivity{
		Time:        "14:00-17:00",
		Activity:    "自由活动",
		Description: "下午分头行动或集体逛街,按当天状态灵活决定。",
	},
	rhythm:    "节奏适中,上午集体行动,下午留弹性",
	objective: "让每个人都至少完成一个自己最想做的事",
}

// DefaultConsensusResult assembles a canned itinerary for the scenario.
// Total: never fails, and the produced value always passes
// validateConsensusResult.
func DefaultConsensusResult(scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) response_models.ConsensusResult {
	text := strings.ToLower(scenario.Title + " " + scenario.Description)
	mood := defaultConsensusMood
	for _, m := range consensusMoods {
		if containsAny(text, m.keywords) {
			mood = m
			break
		}
	}

	title := scenario.Title
	if strings.TrimSpace(title) == "" {
		title = "共同活动方案"
	}

	overnight := isOvernight(scenario, equipments)

	activities := []response_models.ConsensusActivity{
		mood.morning,
		{
			Time:        "12:00-13:30",
			Activity:    "午餐",
			Description: "就近选一家能兼顾大家口味偏好的餐厅。",
		},
		mood.afternoon,
	}

	timeSchedule := "单日行程,上午到傍晚"
	accommodation := "当天往返,无需住宿"
	if overnight {
		timeSchedule = "两天一夜,第一天上午出发,次日下午返程"
		accommodation = "就近预订口碑民宿或连锁酒店,人均一晚150-300元"
		activities = append(activities,
			response_models.ConsensusActivity{
				Time:        "18:30-20:30",
				Activity:    "晚餐聚会",
				Description: "晚餐安排当地特色菜,不赶时间,慢慢吃。",
			},
			response_models.ConsensusActivity{
				Time:        "次日10:00-14:00",
				Activity:    "周边漫游",
				Description: "第二天轻度安排,逛逛住处周边,午饭后返程。",
			},
		)
	}

	return response_models.ConsensusResult{
		Title:              fmt.Sprintf("%s·共识方案", title),
		TimeSchedule:       timeSchedule,
		Transportation:     "市内公共交通为主,远途路段拼车",
		Accommodation:      accommodation,
		CoreObjective:      mood.objective,
		Activities:         activities,
		RhythmConsensus:    mood.rhythm,
		WeatherContingency: "遇雨改为室内备选:博物馆、商场或桌游店",
		Remarks:            "出发前一天在群里确认集合时间和地点",
		Reasoning:          "AI方案暂不可用,按活动描述中的时长和氛围关键词套用了通用模板。",
	}
}

func isOvernight(scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) bool {
	text := strings.ToLower(scenario.Duration + " " + scenario.Title + " " + scenario.Description)
	if containsAny(text, []string{"过夜", "两天", "2天", "三天", "3天", "住宿", "overnight"}) {
		return true
	}
	for _, eq := range equipments {
		if eq.Time.Enabled && eq.Time.Duration == response_models.TimePreferenceOvernight {
			return true
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
