package prompt

// Mock implements Prompter with canned responses for tests.
type Mock struct {
	InputValue string
	InputErr   error
	Inputs     []InputConfig
}

func (m *Mock) Input(cfg InputConfig) (string, error) {
	m.Inputs = append(m.Inputs, cfg)
	return m.InputValue, m.InputErr
}
