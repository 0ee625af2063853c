package topic

import "context"

type fakeRegistry []CommandMeta

func (f fakeRegistry) Commands() []CommandMeta { return f }

// topics builds a registry where every ID is a topic described by desc.
func topics(pairs ...string) fakeRegistry {
	var reg fakeRegistry
	for i := 0; i+1 < len(pairs); i += 2 {
		reg = append(reg, CommandMeta{ID: pairs[i], Description: pairs[i+1], Tags: []string{Tag}})
	}
	return reg
}

type fakeChooser struct {
	pick    string
	err     error
	calls   int
	choices []Choice
	prompt  string
	def     int
}

func (f *fakeChooser) Choose(_ context.Context, choices []Choice, prompt string, defaultIndex int) (string, error) {
	f.calls++
	f.choices = choices
	f.prompt = prompt
	f.def = defaultIndex
	return f.pick, f.err
}

type fakeExecutor struct {
	status int
	err    error
	ran    []string
	args   [][]string
}

func (f *fakeExecutor) Execute(_ context.Context, id string, args []string) (int, error) {
	f.ran = append(f.ran, id)
	f.args = append(f.args, args)
	return f.status, f.err
}
