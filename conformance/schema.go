package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"`      // bool or string
	Program     string      `yaml:"program,omitempty"`   // complete source file
	Statement   string      `yaml:"statement,omitempty"` // body of void main()
	MaxDepth    int         `yaml:"max_depth,omitempty"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test
type Expectation struct {
	Output []string `yaml:"output,omitempty"` // printed lines, in order
	Error  string   `yaml:"error,omitempty"`  // TypeMismatch, MissingReturn, etc.
	Match  string   `yaml:"match,omitempty"`  // regex over the whole output
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}

	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}

// Source returns the program text of the test case
func (tc *TestCase) Source() string {
	if tc.Program != "" {
		return tc.Program
	}
	if tc.Statement != "" {
		return "void main() {\n" + tc.Statement + "\n}\n"
	}
	return ""
}
