package answers

// Kind is the input type of a question.
type Kind int

const (
	// Input is a free-text question.
	Input Kind = iota
	// Confirm is a yes/no question.
	Confirm
)

// Question describes one prompt.
type Question struct {
	Key         string
	Message     string
	Kind        Kind
	DefaultText string
	DefaultBool bool
	// When reports whether the question is shown, given earlier answers.
	// A nil When always shows the question.
	When func(Values) bool
	// Validate checks free-text input; a non-nil error triggers a re-prompt.
	Validate func(string) error
}

// Visible reports whether q is asked given the answers collected so far.
func (q Question) Visible(v Values) bool {
	return q.When == nil || q.When(v)
}

func manual(v Values) bool { return !v.Bool(KeyInstallAutomatically) }

// Questions returns the ordered question set.
func Questions() []Question {
	return []Question{
		{
			Key:      KeyProjectName,
			Message:  "Project name",
			Kind:     Input,
			Validate: ValidateProjectName,
		},
		{Key: KeyUsers, Message: "Install the users component?", Kind: Confirm, DefaultBool: true},
		{Key: KeyProducts, Message: "Install the products component?", Kind: Confirm, DefaultBool: true},
		{Key: KeyInstallAutomatically, Message: "Install routers, models, controllers and views automatically?", Kind: Confirm},
		{Key: KeyRouters, Message: "Install the routers component?", Kind: Confirm, DefaultBool: true, When: manual},
		{Key: KeyModels, Message: "Install the models component?", Kind: Confirm, DefaultBool: true, When: manual},
		{Key: KeyControllers, Message: "Install the controllers component?", Kind: Confirm, DefaultBool: true, When: manual},
		{Key: KeyViews, Message: "Install the views component?", Kind: Confirm, DefaultBool: true, When: manual},
		{Key: KeyReactProject, Message: "Create a React client?", Kind: Confirm, DefaultBool: true, When: manual},
	}
}
