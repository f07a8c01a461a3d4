// Package prompts renders the question templates sent to the body agent.
// Each template asks for exactly one JSON object; the ingestion pipeline
// depends on that contract.
package prompts

import (
	"fmt"
	"strings"

	"github.com/FireBushtree/stronger-body/internal/profiles"
)

// Template identifiers.
const (
	TemplateDietPlan         = "diet-plan"
	TemplateWorkoutPlan      = "workout-plan"
	TemplateNutritionCalc    = "nutrition-calculation"
	TemplateHealthAssessment = "health-assessment"
)

var weeklyFrequency = map[string]string{
	profiles.IntensityLight:     "1-2次",
	profiles.IntensityModerate:  "3-5次",
	profiles.IntensityHeavy:     "5-7次",
	profiles.IntensityVeryHeavy: "7次以上",
}

var intensityLabel = map[string]string{
	profiles.IntensityLight:     "轻度运动",
	profiles.IntensityModerate:  "中等强度运动",
	profiles.IntensityHeavy:     "高强度运动",
	profiles.IntensityVeryHeavy: "极高强度运动",
}

// Generate renders the template identified by templateID for profile.
// extra carries the free-text food description for the
// nutrition-calculation template and is ignored by the others.
func Generate(templateID string, profile *profiles.UserProfile, extra string) (string, error) {
	switch templateID {
	case TemplateDietPlan:
		return DietPlan(profile), nil
	case TemplateWorkoutPlan:
		return WorkoutPlan(profile), nil
	case TemplateNutritionCalc:
		return NutritionCalculation(extra), nil
	case TemplateHealthAssessment:
		return HealthAssessment(profile), nil
	default:
		return "", fmt.Errorf("prompts: unknown template %q", templateID)
	}
}

func genderLabel(gender string) string {
	if gender == profiles.GenderFemale {
		return "女"
	}
	return "男"
}

func targetClause(p *profiles.UserProfile) string {
	if p.TargetWeight > 0 {
		return fmt.Sprintf("，目标体重是%gkg", p.TargetWeight)
	}
	return ""
}

// DietPlan asks for today's three-meal diet plan as one JSON object.
func DietPlan(p *profiles.UserProfile) string {
	frequency, ok := weeklyFrequency[p.WeeklyWorkIntensity]
	if !ok {
		frequency = "适中"
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"我的体重是%gkg，身高%gcm，性别%s，年龄%d岁，每周运动%s%s。"+
			"请根据我的个人信息帮我制定一个今日的饮食计划，要求分为早中晚三餐。"+
			"只需要返回一个JSON字符串，不需要其他额外的话语。\n\n返回格式要求:\n",
		p.CurrentWeight, p.Height, genderLabel(p.Gender), p.Age, frequency, targetClause(p))
	b.WriteString(`{
  "breakfast": {
    "time": "7:00-8:00",
    "foods": [
      {
        "name": "食物名称",
        "amount": "分量",
        "calories": "卡路里",
        "nutrients": {
          "protein": "蛋白质含量(g)",
          "carbs": "碳水化合物含量(g)",
          "fat": "脂肪含量(g)"
        }
      }
    ],
    "totalCalories": "总卡路里",
    "notes": "建议说明"
  },
  "lunch": { "time": "12:00-13:00", "foods": [...], "totalCalories": "总卡路里", "notes": "建议说明" },
  "dinner": { "time": "18:00-19:00", "foods": [...], "totalCalories": "总卡路里", "notes": "建议说明" },
  "summary": {
    "totalDailyCalories": "全天总卡路里",
    "dailyNutrients": {
      "protein": "总蛋白质(g)",
      "carbs": "总碳水化合物(g)",
      "fat": "总脂肪(g)"
    },
    "recommendations": ["建议1", "建议2", "建议3"]
  }
}`)
	return b.String()
}

// WorkoutPlan asks for today's workout plan as one JSON object.
func WorkoutPlan(p *profiles.UserProfile) string {
	label, ok := intensityLabel[p.WeeklyWorkIntensity]
	if !ok {
		label = intensityLabel[profiles.IntensityModerate]
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"我的体重是%gkg，身高%gcm，性别%s，年龄%d岁，目前运动强度为%s%s。"+
			"请根据我的个人信息帮我制定一个今日的运动计划，并以json的格式返回给我。\n\n返回格式要求:\n",
		p.CurrentWeight, p.Height, genderLabel(p.Gender), p.Age, label, targetClause(p))
	b.WriteString(`{
  "warmup": {
    "duration": "热身时长",
    "exercises": [
      { "name": "运动名称", "duration": "持续时间", "description": "动作说明" }
    ]
  },
  "mainWorkout": {
    "duration": "主要训练时长",
    "exercises": [
      {
        "name": "运动名称",
        "sets": "组数",
        "reps": "次数或时长",
        "restTime": "休息时间",
        "targetMuscles": ["目标肌群"],
        "description": "动作说明"
      }
    ]
  },
  "cooldown": {
    "duration": "放松时长",
    "exercises": [
      { "name": "拉伸动作", "duration": "持续时间", "description": "动作说明" }
    ]
  },
  "summary": {
    "totalDuration": "总训练时间",
    "estimatedCaloriesBurned": "预估消耗卡路里",
    "difficulty": "难度级别",
    "recommendations": ["建议1", "建议2", "建议3"]
  }
}`)
	return b.String()
}

// NutritionCalculation asks for a nutrition breakdown of a free-text food
// description.
func NutritionCalculation(foodInput string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "请帮我计算以下食物的营养成分信息：\n%s\n\n", foodInput)
	b.WriteString("请根据这些食物的品种和分量，计算总的营养成分，并以JSON格式返回结果。\n\n返回格式要求:\n")
	b.WriteString(`{
  "foods": [
    {
      "name": "食物名称",
      "amount": "分量/重量",
      "calories": "卡路里",
      "nutrients": {
        "protein": "蛋白质含量(g)",
        "carbs": "碳水化合物含量(g)",
        "fat": "脂肪含量(g)"
      }
    }
  ],
  "totalNutrition": {
    "calories": "总卡路里",
    "protein": "总蛋白质(g)",
    "carbs": "总碳水化合物(g)",
    "fat": "总脂肪(g)"
  },
  "analysis": "营养分析和建议"
}

注意：请尽可能准确地计算营养成分，如果某些食物信息不够明确，请给出合理的估算值。`)
	return b.String()
}

// HealthAssessment asks for an overall health assessment as one JSON object.
func HealthAssessment(p *profiles.UserProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"我的体重是%gkg，身高%gcm，性别%s，年龄%d岁，BMI指数为%g%s。"+
			"请根据我的个人信息对我的健康状况进行评估，并以json的格式返回给我。\n\n返回格式要求:\n",
		p.CurrentWeight, p.Height, genderLabel(p.Gender), p.Age, p.BMI, targetClause(p))
	b.WriteString(`{
  "bmiAnalysis": {
    "value": 0,
    "category": "BMI分类(偏瘦/正常/超重/肥胖)",
    "assessment": "BMI评估说明"
  },
  "healthRisks": [
    { "risk": "风险项目", "level": "风险等级(低/中/高)", "description": "风险说明" }
  ],
  "recommendations": {
    "diet": ["饮食建议1", "饮食建议2"],
    "exercise": ["运动建议1", "运动建议2"],
    "lifestyle": ["生活方式建议1", "生活方式建议2"]
  },
  "summary": {
    "overallHealth": "整体健康状况评价",
    "priority": "优先改善项目",
    "nextSteps": ["下一步行动建议"]
  }
}`)
	return b.String()
}
