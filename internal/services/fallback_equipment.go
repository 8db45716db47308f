package services

import (
	"strings"

	"hopa/internal/models/request_models"
	"hopa/internal/models/response_models"
)

// equipmentRule pairs a keyword predicate with a canned option bundle.
// Rules are evaluated in order; city rules come before tier rules so that
// "上海高端游" picks the Shanghai bundle, not the generic premium one.
type equipmentRule struct {
	keywords []string
	build    func() response_models.EquipmentOptions
}

var equipmentRules = []equipmentRule{
	{
		keywords: []string{"上海", "shanghai"},
		build: func() response_models.EquipmentOptions {
			return response_models.EquipmentOptions{
				Budget:         response_models.BudgetOption{Min: 300, Max: 800, Description: "人均300-800元,覆盖门票和餐饮"},
				TimePreference: response_models.TimePreferenceFullDay,
				Attractions:    []string{"外滩", "豫园", "东方明珠", "田子坊"},
				Cuisines:       []string{"小笼包", "生煎包", "本帮菜"},
				Reasoning:      "上海一日游的经典组合,景点集中在市区,交通方便。",
			}
		},
	},
	{
		keywords: []string{"北京", "beijing"},
		build: func() response_models.EquipmentOptions {
			return response_models.EquipmentOptions{
				Budget:         response_models.BudgetOption{Min: 300, Max: 800, Description: "人均300-800元,含景点门票"},
				TimePreference: response_models.TimePreferenceFullDay,
				Attractions:    []string{"故宫", "颐和园", "南锣鼓巷", "景山公园"},
				Cuisines:       []string{"北京烤鸭", "炸酱面", "铜锅涮肉"},
				Reasoning:      "北京市区经典路线,故宫需要提前预约。",
			}
		},
	},
	{
		keywords: []string{"杭州", "hangzhou"},
		build: func() response_models.EquipmentOptions {
			return response_models.EquipmentOptions{
				Budget:         response_models.BudgetOption{Min: 200, Max: 600, Description: "人均200-600元,西湖景区大部分免费"},
				TimePreference: response_models.TimePreferenceFullDay,
				Attractions:    []string{"西湖", "灵隐寺", "西溪湿地", "河坊街"},
				Cuisines:       []string{"西湖醋鱼", "龙井虾仁", "片儿川"},
				Reasoning:      "杭州以西湖为中心,步行加公交即可覆盖主要景点。",
			}
		},
	},
	{
		keywords: []string{"高端", "奢华", "premium", "luxury"},
		build: func() response_models.EquipmentOptions {
			return response_models.EquipmentOptions{
				Budget:         response_models.BudgetOption{Min: 800, Max: 2000, Description: "人均800-2000元,体验优先"},
				TimePreference: response_models.TimePreferenceOvernight,
				Attractions:    []string{"米其林餐厅", "精品酒店下午茶", "私人导览博物馆"},
				Cuisines:       []string{"精致料理", "创意菜", "特色甜品"},
				Reasoning:      "高端场景下优先保证体验质量,行程宜少而精。",
			}
		},
	},
	{
		keywords: []string{"经济", "省钱", "穷游", "budget"},
		build: func() response_models.EquipmentOptions {
			return response_models.EquipmentOptions{
				Budget:         response_models.BudgetOption{Min: 100, Max: 300, Description: "人均100-300元,控制在小额范围"},
				TimePreference: response_models.TimePreferenceHalfDay,
				Attractions:    []string{"免费公园", "城市绿道", "本地市集"},
				Cuisines:       []string{"街边小吃", "大排档", "本地家常菜"},
				Reasoning:      "经济场景下选择免费或低价的公共空间,把钱花在吃上。",
			}
		},
	},
}

// DefaultEquipmentOptions picks the canned bundle whose keywords appear in
// the scenario's title or description. Total: any input yields a bundle
// passing the equipment validator, the generic one if nothing matches.
func DefaultEquipmentOptions(scenario request_models.ScenarioInput) response_models.EquipmentOptions {
	text := strings.ToLower(scenario.Title + " " + scenario.Description)

	for _, rule := range equipmentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.build()
			}
		}
	}

	return response_models.EquipmentOptions{
		Budget:         response_models.BudgetOption{Min: 200, Max: 500, Description: "人均200-500元的常见区间"},
		TimePreference: response_models.TimePreferenceFullDay,
		Attractions:    []string{"当地热门景点", "城市地标", "特色街区"},
		Cuisines:       []string{"当地特色菜", "人气餐厅"},
		Reasoning:      "未识别出具体城市,给出通用的预算和类别建议。",
	}
}
