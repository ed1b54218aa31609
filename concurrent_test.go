package classregex

import (
	"sync"
	"testing"
)

// TestConcurrentMatch confirms a single compiled Regex is safe for
// concurrent read-only use by many goroutines at once.
func TestConcurrentMatch(t *testing.T) {
	for _, ctor := range []struct {
		name string
		new  func(string) (*Regex, error)
	}{
		{"nfa", NewNFA},
		{"dfa", NewDFA},
	} {
		re, err := ctor.new(`(a|b)*abb`)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", ctor.name, err)
		}

		inputs := []string{"abb", "aababb", "ab", "", "bbbabb"}

		const numGoroutines = 50
		const numIterations = 100

		var wg sync.WaitGroup
		for i := 0; i < numGoroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < numIterations; j++ {
					for _, s := range inputs {
						_ = re.IsMatch(s)
						_, _ = re.Find(s)
						_, _ = re.FindShortest(s)
					}
				}
			}()
		}
		wg.Wait()
	}
}

// TestConcurrentDifferentPatterns confirms independently compiled Regex
// values don't interfere with one another when used from separate
// goroutines simultaneously.
func TestConcurrentDifferentPatterns(t *testing.T) {
	patterns := []string{`\d+`, `[a-z]+`, `foo|bar`, `\s`}
	regexes := make([]*Regex, len(patterns))
	for i, p := range patterns {
		re, err := NewNFA(p)
		if err != nil {
			t.Fatalf("failed to compile %q: %v", p, err)
		}
		regexes[i] = re
	}

	input := "test123 foo bar end"

	const numGoroutines = 50
	const numIterations = 100

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			re := regexes[idx%len(regexes)]
			for j := 0; j < numIterations; j++ {
				_ = re.IsMatch(input)
				_, _ = re.Find(input)
			}
		}(i)
	}
	wg.Wait()
}
