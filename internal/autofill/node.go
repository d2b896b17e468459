package autofill

// ViewNode read-only узел внешнего дерева формы.
// Реализация принадлежит платформе, matcher только читает узлы.
type ViewNode interface {
	// FieldID идентификатор поля для заполнения (пустой, если поле не заполняемое)
	FieldID() string
	// Hints autofill hints узла ("username", "password", ...)
	Hints() []string
	// HintText видимая подсказка (placeholder)
	HintText() string
	// Text видимый текст или label
	Text() string
	// InputType флаги типа ввода (класс | вариация)
	InputType() int
	// Children дочерние узлы в порядке отображения
	Children() []ViewNode
}

// Флаги InputType: младшие 4 бита класс, следующие 8 бит вариация
const (
	InputTypeMaskClass     = 0x0000000f
	InputTypeMaskVariation = 0x00000ff0

	InputTypeClassText   = 0x00000001
	InputTypeClassNumber = 0x00000002

	TextVariationPassword        = 0x00000080
	TextVariationVisiblePassword = 0x00000090
	TextVariationWebPassword     = 0x000000e0
	NumberVariationPassword      = 0x00000010
)

// isPasswordInputType проверяет, что InputType описывает поле пароля
func isPasswordInputType(inputType int) bool {
	variation := inputType & InputTypeMaskVariation
	switch inputType & InputTypeMaskClass {
	case InputTypeClassText:
		return variation == TextVariationPassword ||
			variation == TextVariationVisiblePassword ||
			variation == TextVariationWebPassword
	case InputTypeClassNumber:
		return variation == NumberVariationPassword
	default:
		return false
	}
}

// Node JSON-представление узла формы, реализует ViewNode
type Node struct {
	ID            string   `json:"id"`
	AutofillHints []string `json:"autofill_hints,omitempty"`
	Hint          string   `json:"hint,omitempty"`
	Label         string   `json:"text,omitempty"`
	Nodes         []*Node  `json:"children,omitempty"`
	Type          int      `json:"input_type,omitempty"`
}

var _ ViewNode = (*Node)(nil)

func (n *Node) FieldID() string  { return n.ID }
func (n *Node) Hints() []string  { return n.AutofillHints }
func (n *Node) HintText() string { return n.Hint }
func (n *Node) Text() string     { return n.Label }
func (n *Node) InputType() int   { return n.Type }

func (n *Node) Children() []ViewNode {
	children := make([]ViewNode, 0, len(n.Nodes))
	for _, c := range n.Nodes {
		if c != nil {
			children = append(children, c)
		}
	}
	return children
}
