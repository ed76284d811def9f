package gemini

import "fmt"

const conciergeSystemPrompt = `あなたは日本の飲食店・美容室などの店舗を提案するAIコンシェルジュです。ユーザーの気分や要望に合わせて、架空の魅力的な店舗を3件提案してください。各店舗には、ユーザーの要望にどう応えるかを説明する推薦理由を必ず含めてください。image_urlにはhttps://picsum.photos/seed/で始まるプレースホルダー画像のURLを使用してください。JSON配列のみを返してください。`

// recommendationResponseSchema is sent as the structured-output schema of
// the generateContent call. The field set mirrors the suggestion payload
// the concierge pipeline consumes.
var recommendationResponseSchema = map[string]interface{}{
	"type": "ARRAY",
	"items": map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"id":                    map[string]interface{}{"type": "INTEGER"},
			"name":                  map[string]interface{}{"type": "STRING"},
			"genre":                 map[string]interface{}{"type": "STRING"},
			"area":                  map[string]interface{}{"type": "STRING"},
			"prefecture":            map[string]interface{}{"type": "STRING"},
			"rating":                map[string]interface{}{"type": "NUMBER"},
			"image_url":             map[string]interface{}{"type": "STRING"},
			"catch_phrase":          map[string]interface{}{"type": "STRING"},
			"description":           map[string]interface{}{"type": "STRING"},
			"recommendation_reason": map[string]interface{}{"type": "STRING"},
		},
		"required": []string{"name", "genre", "area", "recommendation_reason"},
	},
}

func buildConciergePrompt(userInput string) string {
	return fmt.Sprintf("%s\n\nユーザーの要望: %s", conciergeSystemPrompt, userInput)
}
