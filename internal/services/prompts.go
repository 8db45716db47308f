package services

import (
	"fmt"
	"strings"

	"hopa/internal/models/request_models"
)

// System instructions for the three generation tasks. Each prompt embeds a
// literal JSON example the model is told to mimic; the example text is part
// of the template and versioned with it.

const conflictQuestionSystemPrompt = "你是一位团队共识引导专家,擅长设计帮助小团体发现和化解分歧的互动问题。" +
	"你只输出JSON,不输出任何解释、前言或markdown代码块。"

const equipmentOptionsSystemPrompt = "你是一位本地出行规划师,熟悉各城市的具体景点和特色美食。" +
	"推荐必须是具体的专有名词(如\"外滩\"、\"小笼包\"),不要输出\"热门景点\"这类抽象类别。" +
	"你只输出JSON,不输出任何解释或markdown代码块。"

const consensusSystemPrompt = "你是一位行程方案设计师,负责把一组人的偏好汇总成一份大家都能接受的共识方案。" +
	"你只输出JSON,不输出任何解释或markdown代码块。"

const conflictQuestionExample = `[
  {
    "id": "q1",
    "type": "choice",
    "question": "问题内容",
    "options": ["选项A", "选项B", "选项C", "选项D"],
    "correct_answer": 0,
    "explanation": "为什么这个答案有助于达成共识",
    "category": "budget"
  }
]`

const equipmentOptionsExample = `{
  "budget": {"min": 300, "max": 800, "description": "人均预算区间说明"},
  "time_preference": "full-day",
  "attractions": ["具体景点1", "具体景点2", "具体景点3"],
  "cuisines": ["具体美食1", "具体美食2"],
  "reasoning": "推荐理由"
}`

const consensusResultExample = `{
  "title": "方案标题",
  "time_schedule": "整体时间安排",
  "transportation": "交通方式",
  "accommodation": "住宿安排",
  "core_objective": "这次活动最重要的共同目标",
  "activities": [
    {"time": "09:00-11:00", "activity": "活动名称", "description": "活动说明"}
  ],
  "rhythm_consensus": "节奏共识(紧凑/宽松)",
  "weather_contingency": "天气备选方案",
  "remarks": "其他备注",
  "reasoning": "方案如何兼顾了各方偏好"
}`

// BuildConflictQuestionPrompt renders one scenario into the user prompt for
// conflict-question generation. With two or more personalized equipment
// records the prompt cites each player's concrete numbers and asks for
// questions that surface the conflicts between them; otherwise it asks for
// general consensus questions. Pure string interpolation, no randomness.
func BuildConflictQuestionPrompt(scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) string {
	if countPersonalized(equipments) >= 2 {
		return buildEquipmentAwareQuestionPrompt(scenario, equipments)
	}
	return buildGenericQuestionPrompt(scenario)
}

func buildGenericQuestionPrompt(scenario request_models.ScenarioInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "一个小团体正在计划共同活动:「%s」。\n", scenario.Title)
	if scenario.Description != "" {
		fmt.Fprintf(&b, "活动描述:%s\n", scenario.Description)
	}
	writeScenarioFacts(&b, scenario)

	b.WriteString("\n请设计5道帮助他们发现潜在分歧、达成共识的互动题目。\n")
	b.WriteString("要求:\n")
	b.WriteString("1. 题目覆盖预算(budget)、时间(time)、偏好(preference)、原则(principle)、沟通(communication)、决策(decision)中的多个类别\n")
	b.WriteString("2. 题型包含选择题(choice)、排序题(sort)和填空题(fill)\n")
	b.WriteString("3. choice题必须提供至少2个选项\n")
	b.WriteString("4. 只返回JSON数组,不要markdown代码块,不要任何多余文字\n\n")
	b.WriteString("返回格式(严格按此结构):\n")
	b.WriteString(conflictQuestionExample)

	return b.String()
}

func buildEquipmentAwareQuestionPrompt(scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "一个小团体正在计划共同活动:「%s」。\n", scenario.Title)
	if scenario.Description != "" {
		fmt.Fprintf(&b, "活动描述:%s\n", scenario.Description)
	}
	writeScenarioFacts(&b, scenario)

	b.WriteString("\n各成员已提交的偏好装备:\n")
	for i, eq := range equipments {
		name := eq.PlayerID
		if name == "" {
			name = fmt.Sprintf("成员%d", i+1)
		}
		fmt.Fprintf(&b, "- %s:", name)
		var parts []string
		if eq.Budget.Enabled {
			parts = append(parts, fmt.Sprintf("预算%d-%d元", eq.Budget.Min, eq.Budget.Max))
		}
		if eq.Time.Enabled {
			parts = append(parts, fmt.Sprintf("时间偏好%s", eq.Time.Duration))
		}
		if eq.Attractions.Enabled && len(eq.Attractions.Preferences) > 0 {
			parts = append(parts, fmt.Sprintf("想去%s", strings.Join(eq.Attractions.Preferences, "、")))
		}
		if eq.Cuisine.Enabled && len(eq.Cuisine.Types) > 0 {
			parts = append(parts, fmt.Sprintf("想吃%s", strings.Join(eq.Cuisine.Types, "、")))
		}
		if len(parts) == 0 {
			parts = append(parts, "未设置偏好")
		}
		b.WriteString(strings.Join(parts, ","))
		b.WriteString("\n")
	}

	b.WriteString("\n请针对上面成员之间的具体分歧(预算差距、时间冲突、景点和美食偏好不同)设计5道互动题目,引用他们的真实数据。\n")
	b.WriteString("要求:\n")
	b.WriteString("1. 每道题标注类别:budget、time、preference、principle、communication或decision\n")
	b.WriteString("2. 题型包含选择题(choice)、排序题(sort)和填空题(fill)\n")
	b.WriteString("3. choice题必须提供至少2个选项\n")
	b.WriteString("4. 只返回JSON数组,不要markdown代码块,不要任何多余文字\n\n")
	b.WriteString("返回格式(严格按此结构):\n")
	b.WriteString(conflictQuestionExample)

	return b.String()
}

// BuildEquipmentOptionsPrompt asks for a concrete preference bundle (real
// attraction and cuisine names) matching the scenario.
func BuildEquipmentOptionsPrompt(scenario request_models.ScenarioInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "为活动「%s」推荐一套偏好装备选项。\n", scenario.Title)
	if scenario.Description != "" {
		fmt.Fprintf(&b, "活动描述:%s\n", scenario.Description)
	}
	writeScenarioFacts(&b, scenario)

	b.WriteString("\n要求:\n")
	b.WriteString("1. attractions和cuisines必须是具体的专有名词,不要抽象类别\n")
	b.WriteString("2. time_preference只能是half-day、full-day或overnight之一\n")
	b.WriteString("3. 只返回JSON对象,不要markdown代码块,不要任何多余文字\n\n")
	b.WriteString("返回格式(严格按此结构):\n")
	b.WriteString(equipmentOptionsExample)

	return b.String()
}

// BuildConsensusPrompt asks for the final shared plan, weighing every
// player's submitted equipment.
func BuildConsensusPrompt(scenario request_models.ScenarioInput, equipments []request_models.PlayerEquipment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "请为活动「%s」生成最终共识方案。\n", scenario.Title)
	if scenario.Description != "" {
		fmt.Fprintf(&b, "活动描述:%s\n", scenario.Description)
	}
	writeScenarioFacts(&b, scenario)

	if len(equipments) > 0 {
		b.WriteString("\n各成员偏好:\n")
		for i, eq := range equipments {
			name := eq.PlayerID
			if name == "" {
				name = fmt.Sprintf("成员%d", i+1)
			}
			fmt.Fprintf(&b, "- %s:", name)
			var parts []string
			if eq.Budget.Enabled {
				parts = append(parts, fmt.Sprintf("预算%d-%d元", eq.Budget.Min, eq.Budget.Max))
			}
			if eq.Time.Enabled {
				parts = append(parts, fmt.Sprintf("时间%s", eq.Time.Duration))
			}
			if eq.Attractions.Enabled && len(eq.Attractions.Preferences) > 0 {
				parts = append(parts, fmt.Sprintf("景点%s", strings.Join(eq.Attractions.Preferences, "、")))
			}
			if eq.Cuisine.Enabled && len(eq.Cuisine.Types) > 0 {
				parts = append(parts, fmt.Sprintf("美食%s", strings.Join(eq.Cuisine.Types, "、")))
			}
			if len(parts) == 0 {
				parts = append(parts, "未设置偏好")
			}
			b.WriteString(strings.Join(parts, ","))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n要求:\n")
	b.WriteString("1. 方案必须兼顾所有成员的偏好,在reasoning中说明取舍\n")
	b.WriteString("2. activities至少包含3个条目,每个条目必须有time、activity、description三个字段\n")
	b.WriteString("3. 所有字段都必须填写,不能为空\n")
	b.WriteString("4. 只返回JSON对象,不要markdown代码块,不要任何多余文字\n\n")
	b.WriteString("返回格式(严格按此结构):\n")
	b.WriteString(consensusResultExample)

	return b.String()
}

// writeScenarioFacts appends the optional scenario clauses shared by all
// three builders. Absent fields are simply omitted.
func writeScenarioFacts(b *strings.Builder, scenario request_models.ScenarioInput) {
	if scenario.ScenarioType != "" {
		fmt.Fprintf(b, "成员关系:%s\n", scenarioTypeLabel(scenario.ScenarioType))
	}
	if scenario.HasBudget() {
		fmt.Fprintf(b, "预算范围:%d-%d元/人\n", scenario.BudgetRange.Min, scenario.BudgetRange.Max)
	}
	if scenario.Duration != "" {
		fmt.Fprintf(b, "时长:%s\n", scenario.Duration)
	}
	if len(scenario.Preferences) > 0 {
		fmt.Fprintf(b, "已知偏好:%s\n", strings.Join(scenario.Preferences, "、"))
	}
}

func scenarioTypeLabel(scenarioType string) string {
	switch scenarioType {
	case "friends":
		return "朋友"
	case "family":
		return "家人"
	case "couples":
		return "情侣"
	case "team":
		return "团队同事"
	default:
		return scenarioType
	}
}

// countPersonalized counts equipment records that actually carry
// preferences; empty placeholders do not trigger the personalized prompt.
func countPersonalized(equipments []request_models.PlayerEquipment) int {
	n := 0
	for _, eq := range equipments {
		if eq.HasAnyPreference() {
			n++
		}
	}
	return n
}
