package extractor

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
	"github.com/nguyentantai21042004/minutes-flow/internal/textutil"
)

// Accepted field aliases, in priority order.
var (
	actionFields  = []string{"action", "action_text", "task"}
	contextFields = []string{"context", "sentence"}
)

// Normalize maps raw items onto the fixed ActionItem schema and renumbers
// them 1..N in order. Normalizing an already normalized list is a no-op.
func Normalize(raw []any) []models.ActionItem {
	items := make([]models.ActionItem, 0, len(raw))
	for i, it := range raw {
		var (
			action, context string
			owner, deadline *string
		)

		switch v := it.(type) {
		case models.ActionItem:
			action = firstNonEmpty(v.Action, v.Context)
			owner = nonEmpty(v.Owner)
			deadline = nonEmpty(v.Deadline)
			context = v.Context
		case map[string]any:
			action = firstField(v, actionFields)
			if action == "" {
				action = render(v)
			}
			if s, ok := truthyString(v["owner"]); ok {
				owner = &s
			}
			if s, ok := truthyString(v["deadline"]); ok {
				deadline = &s
			}
			context = firstField(v, contextFields)
		default:
			action = render(v)
		}

		if action == "" {
			action = render(it)
		}
		if context == "" {
			context = action
		}

		items = append(items, models.ActionItem{
			ID:       i + 1,
			Action:   textutil.Truncate(action, models.MaxActionLength),
			Owner:    owner,
			Deadline: deadline,
			Context:  context,
		})
	}
	return items
}

func firstField(m map[string]any, keys []string) string {
	for _, k := range keys {
		if s, ok := truthyString(m[k]); ok {
			return s
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func nonEmpty(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

// truthyString renders v unless it is absent or falsy (null, "", false, 0,
// empty array or object).
func truthyString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case bool:
		return strconv.FormatBool(t), t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), t != 0
	case []any:
		return render(t), len(t) > 0
	case map[string]any:
		return render(t), len(t) > 0
	default:
		return render(t), true
	}
}

// render is the fallback text for an item without a usable action field.
func render(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
