package services

import "hopa/internal/models/response_models"

// defaultConflictQuestions is the canned question set used whenever the AI
// path fails. Exactly five questions, spanning the category set and all
// three question types so every rendering path stays exercised.
var defaultConflictQuestions = []response_models.GeneratedQuestion{
	{
		ID:       "default_1",
		Type:     response_models.QuestionTypeChoice,
		Question: "如果大家的预算差距比较大,你更倾向于哪种处理方式?",
		Options: []string{
			"按最低预算来,大家都轻松",
			"按平均预算来,互相迁就",
			"按最高预算来,体验优先",
			"分开消费,各付各的",
		},
		CorrectAnswer: 1,
		Explanation:   "预算分歧最容易引发矛盾,提前确定分摊原则能避免活动中的尴尬。",
		Category:      "budget",
	},
	{
		ID:       "default_2",
		Type:     response_models.QuestionTypeSort,
		Question: "请按你心目中的重要程度,给以下几项排序。",
		Options: []string{
			"行程不赶、节奏舒服",
			"吃到想吃的东西",
			"去到想去的地方",
			"花费控制在预算内",
		},
		CorrectAnswer: []string{"行程不赶、节奏舒服", "去到想去的地方", "吃到想吃的东西", "花费控制在预算内"},
		Explanation:   "排序能直观暴露每个人的优先级差异,这是很多计划失败的根源。",
		Category:      "preference",
	},
	{
		ID:       "default_3",
		Type:     response_models.QuestionTypeChoice,
		Question: "出发时间很难统一时,你愿意接受哪种方案?",
		Options: []string{
			"早起出发,时间充裕",
			"晚一点出发,大家都睡饱",
			"分批出发,到目的地会合",
		},
		CorrectAnswer: 0,
		Explanation:   "时间安排是团体活动的第二大分歧点,先把底线聊开。",
		Category:      "time",
	},
	{
		ID:            "default_4",
		Type:          response_models.QuestionTypeFill,
		Question:      "这次活动中,你绝对不能接受的一件事是:____",
		CorrectAnswer: "",
		Explanation:   "把各自的原则底线摆到明面上,比事后补救有效得多。",
		Category:      "principle",
	},
	{
		ID:       "default_5",
		Type:     response_models.QuestionTypeChoice,
		Question: "当大家意见僵持不下时,你觉得应该怎么决定?",
		Options: []string{
			"少数服从多数,投票表决",
			"由发起人拍板",
			"轮流做主,这次听一个人的",
			"抽签或掷硬币,交给运气",
		},
		CorrectAnswer: 0,
		Explanation:   "提前约定决策机制,僵局出现时就不会伤感情。",
		Category:      "decision",
	},
}

// DefaultConflictQuestions returns a copy of the canned set, so callers can
// mutate their slice without corrupting the defaults.
func DefaultConflictQuestions() []response_models.GeneratedQuestion {
	out := make([]response_models.GeneratedQuestion, len(defaultConflictQuestions))
	copy(out, defaultConflictQuestions)
	return out
}
