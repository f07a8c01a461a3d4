package ai

import (
	"context"
	"strings"
)

// MockProvider serves canned replies for local runs and tests. Replies are
// deliberately messy — prose around the JSON object, unit suffixes inside
// numeric fields — because that is what the real agent sends back.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx

	switch {
	case strings.Contains(prompt, "饮食计划"):
		return mockDietReply, nil
	case strings.Contains(prompt, "运动计划"):
		return mockWorkoutReply, nil
	case strings.Contains(prompt, "营养成分"):
		return mockNutritionReply, nil
	default:
		return mockAssessmentReply, nil
	}
}

// GenerateStream chops the canned reply into small chunks so the streaming
// path gets exercised without a live model.
func (p *MockProvider) GenerateStream(ctx context.Context, prompt string) (<-chan string, error) {
	text, err := p.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	out := make(chan string)
	go func() {
		defer close(out)
		const chunkSize = 64
		for i := 0; i < len(text); i += chunkSize {
			end := i + chunkSize
			if end > len(text) {
				end = len(text)
			}
			select {
			case out <- text[i:end]:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

const mockDietReply = `好的，这是为你制定的今日饮食计划：
{
  "breakfast": {
    "time": "7:00-8:00",
    "foods": [
      {
        "name": "燕麦粥",
        "amount": "1碗",
        "calories": "150卡",
        "nutrients": { "protein": "5g", "carbs": "27g", "fat": "3g" }
      },
      {
        "name": "水煮蛋",
        "amount": "1个",
        "calories": "70卡",
        "nutrients": { "protein": "6g", "carbs": "1g", "fat": "5g" }
      }
    ],
    "totalCalories": "220卡",
    "notes": "早餐应在起床后1小时内食用"
  },
  "lunch": {
    "time": "12:00-13:00",
    "foods": [
      {
        "name": "鸡胸肉",
        "amount": "100g",
        "calories": "165卡",
        "nutrients": { "protein": "31g", "carbs": "0g", "fat": "3.6g" }
      },
      {
        "name": "糙米饭",
        "amount": "1碗",
        "calories": "220卡",
        "nutrients": { "protein": "5g", "carbs": "45g", "fat": "2g" }
      }
    ],
    "totalCalories": "385卡",
    "notes": "午餐注重蛋白质摄入"
  },
  "dinner": {
    "time": "18:00-19:00",
    "foods": [
      {
        "name": "三文鱼",
        "amount": "80g",
        "calories": "180卡",
        "nutrients": { "protein": "22g", "carbs": "0g", "fat": "11g" }
      },
      {
        "name": "蔬菜沙拉",
        "amount": "1份",
        "calories": "80卡",
        "nutrients": { "protein": "3g", "carbs": "12g", "fat": "3g" }
      }
    ],
    "totalCalories": "260卡",
    "notes": "晚餐清淡，睡前3小时完成进食"
  },
  "summary": {
    "totalDailyCalories": "865卡",
    "dailyNutrients": { "protein": "72g", "carbs": "85g", "fat": "27.6g" },
    "recommendations": ["多喝水，每天至少2升", "控制油盐摄入", "保持规律进餐时间"]
  }
}`

const mockWorkoutReply = `以下是为你定制的今日运动计划：
{
  "warmup": {
    "duration": "10分钟",
    "exercises": [
      { "name": "开合跳", "duration": "3分钟", "description": "全身热身，唤醒心肺" },
      { "name": "动态拉伸", "duration": "7分钟", "description": "重点活动肩髋膝关节" }
    ]
  },
  "mainWorkout": {
    "duration": "35分钟",
    "exercises": [
      {
        "name": "深蹲",
        "sets": "4组",
        "reps": "12次",
        "restTime": "60秒",
        "targetMuscles": ["股四头肌", "臀大肌"],
        "description": "保持背部挺直，膝盖不超过脚尖"
      },
      {
        "name": "俯卧撑",
        "sets": "3组",
        "reps": "15次",
        "restTime": "45秒",
        "targetMuscles": ["胸大肌", "三头肌"],
        "description": "身体成一条直线，下落至胸口接近地面"
      }
    ]
  },
  "cooldown": {
    "duration": "8分钟",
    "exercises": [
      { "name": "静态拉伸", "duration": "8分钟", "description": "每个部位保持20-30秒" }
    ]
  },
  "summary": {
    "totalDuration": "53分钟",
    "estimatedCaloriesBurned": "320卡",
    "difficulty": "中等",
    "recommendations": ["运动前后补充水分", "如感到头晕立即停止", "每周保持3-4次训练"]
  }
}`

const mockNutritionReply = `根据你的描述，营养成分计算如下：
{
  "foods": [
    {
      "name": "鸡胸肉",
      "amount": "100g",
      "calories": "165卡",
      "nutrients": { "protein": "31g", "carbs": "0g", "fat": "3.6g" }
    },
    {
      "name": "米饭",
      "amount": "1碗",
      "calories": "230卡",
      "nutrients": { "protein": "4g", "carbs": "50g", "fat": "0.5g" }
    }
  ],
  "totalNutrition": {
    "calories": "395卡",
    "protein": "35g",
    "carbs": 50,
    "fat": "4.1g"
  },
  "analysis": "这餐蛋白质充足，脂肪含量低，适合减脂期食用。"
}`

const mockAssessmentReply = `这是你的健康评估：
{
  "bmiAnalysis": {
    "value": 22.9,
    "category": "正常",
    "assessment": "BMI处于健康范围内"
  },
  "healthRisks": [
    { "risk": "久坐", "level": "中", "description": "每周运动频率偏低，建议增加日常活动量" }
  ],
  "recommendations": {
    "diet": ["保证蛋白质摄入", "减少精制糖"],
    "exercise": ["每周3次有氧运动", "加入2次力量训练"],
    "lifestyle": ["保证7小时以上睡眠", "减少久坐时间"]
  },
  "summary": {
    "overallHealth": "整体健康状况良好",
    "priority": "增加运动频率",
    "nextSteps": ["制定每周运动计划"]
  }
}`
