package schema

// Document is the serialized machine description.
type Document struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	States      []string `json:"states" yaml:"states" mapstructure:"states" validate:"required,min=1,dive,required"`
	Symbols     []string `json:"symbols" yaml:"symbols" mapstructure:"symbols" validate:"required,min=1,dive,len=1"`
	Start       *Start   `json:"start,omitempty" yaml:"start,omitempty" mapstructure:"start" validate:"omitempty"`
	Transitions []Rule   `json:"transitions" yaml:"transitions" mapstructure:"transitions" validate:"required,min=1,dive"`
}

// Rule is one transition: (From, Read) -> (To, Write, Action).
type Rule struct {
	From   string `json:"from" yaml:"from" mapstructure:"from" validate:"required"`
	Read   string `json:"read" yaml:"read" mapstructure:"read" validate:"len=1"`
	To     string `json:"to" yaml:"to" mapstructure:"to" validate:"required"`
	Write  string `json:"write" yaml:"write" mapstructure:"write" validate:"len=1"`
	Action string `json:"action" yaml:"action" mapstructure:"action" validate:"len=1"`
}

// Start holds the default run parameters. Head is 1-based.
type Start struct {
	Input string `json:"input" yaml:"input" mapstructure:"input"`
	Head  int    `json:"head" yaml:"head" mapstructure:"head" validate:"gte=1"`
}
