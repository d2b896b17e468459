package autofill

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// FieldKind тип распознанного поля
type FieldKind int

const (
	FieldUsername FieldKind = iota + 1
	FieldPassword
)

func (k FieldKind) String() string {
	switch k {
	case FieldUsername:
		return "username"
	case FieldPassword:
		return "password"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// MarshalText кодирует тип поля строкой (для JSON и claims)
func (k FieldKind) MarshalText() ([]byte, error) {
	switch k {
	case FieldUsername, FieldPassword:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("unknown field kind %d", int(k))
	}
}

// UnmarshalText разбирает строковое представление типа поля
func (k *FieldKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "username":
		*k = FieldUsername
	case "password":
		*k = FieldPassword
	default:
		return fmt.Errorf("unknown field kind %q", text)
	}
	return nil
}

// FieldDescriptor поле формы, которое можно заполнить
type FieldDescriptor struct {
	FieldID string    `json:"id"`
	Kind    FieldKind `json:"kind"`
}

var (
	usernameHints = []string{"username", "emailaddress", "email"}
	passwordHints = []string{"password", "current-password", "new-password"}

	// DefaultUsernameKeywords ключевые слова поля логина в подсказке или тексте
	DefaultUsernameKeywords = []string{"email", "username", "käyttäjä"}
	// DefaultPasswordKeywords ключевые слова поля пароля в подсказке или тексте
	DefaultPasswordKeywords = []string{"password", "salasana"}
)

// Classifier распознает поля логина и пароля. Не имеет изменяемого состояния.
type Classifier struct {
	usernameKeywords []string
	passwordKeywords []string
}

// NewClassifier создает классификатор с ключевыми словами по умолчанию и дополнительными
// (локализованными) словами. Сравнение без учета регистра.
func NewClassifier(extraUsernameKeywords, extraPasswordKeywords []string) *Classifier {
	return &Classifier{
		usernameKeywords: mergeKeywords(DefaultUsernameKeywords, extraUsernameKeywords),
		passwordKeywords: mergeKeywords(DefaultPasswordKeywords, extraPasswordKeywords),
	}
}

// Classify определяет тип поля узла. Логин проверяется первым, узел получает не больше одного типа.
func (c *Classifier) Classify(node ViewNode) (FieldKind, bool) {
	hints := lowerAll(node.Hints())
	hintText := strings.ToLower(node.HintText())
	text := strings.ToLower(node.Text())

	if containsAny(hints, usernameHints) ||
		containsKeyword(hintText, c.usernameKeywords) ||
		containsKeyword(text, c.usernameKeywords) {
		return FieldUsername, true
	}

	if containsAny(hints, passwordHints) ||
		isPasswordInputType(node.InputType()) ||
		containsKeyword(hintText, c.passwordKeywords) ||
		containsKeyword(text, c.passwordKeywords) {
		return FieldPassword, true
	}

	return 0, false
}

// FindFields обходит деревья в глубину (pre-order) и собирает все распознанные поля.
// Узлы без FieldID не заполняются, но их дети обходятся.
// Отмена ctx проверяется на каждом узле, обход не имеет побочных эффектов.
func (c *Classifier) FindFields(ctx context.Context, roots ...ViewNode) ([]FieldDescriptor, error) {
	var fields []FieldDescriptor

	// Явный стек вместо рекурсии: глубина дерева задается внешним кодом
	stack := make([]ViewNode, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		if roots[i] != nil {
			stack = append(stack, roots[i])
		}
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if id := node.FieldID(); id != "" {
			if kind, ok := c.Classify(node); ok {
				fields = append(fields, FieldDescriptor{FieldID: id, Kind: kind})
			}
		}

		children := node.Children()
		for i := len(children) - 1; i >= 0; i-- {
			if children[i] != nil {
				stack = append(stack, children[i])
			}
		}
	}

	return fields, nil
}

func mergeKeywords(defaults, extra []string) []string {
	out := make([]string, 0, len(defaults)+len(extra))
	for _, kw := range slices.Concat(defaults, extra) {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && !slices.Contains(out, kw) {
			out = append(out, kw)
		}
	}
	return out
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func containsAny(values, markers []string) bool {
	for _, v := range values {
		if slices.Contains(markers, v) {
			return true
		}
	}
	return false
}

func containsKeyword(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
