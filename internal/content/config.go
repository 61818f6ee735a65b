package content

import "fmt"

// Profile fixes the generation parameters for a topic: length budget,
// question count, reading-time label, and style instruction. Every
// (topic, difficulty) pair maps deterministically onto one profile plus
// a difficulty register.
type Profile struct {
	// MinWords and MaxWords bound the passage length.
	MinWords int
	MaxWords int

	// QuestionCount is the exact number of questions to generate.
	// Zero marks the quick-read variant.
	QuestionCount int

	// AvgTime is the reading-time label attached to the session.
	AvgTime string

	// Style is the topic-specific prompt instruction.
	Style string
}

// profiles is the static topic table. Branching on topic values is
// deliberately avoided; a topic without a table entry is a startup
// error, not a silent fallthrough.
var profiles = map[Topic]Profile{
	TopicBusiness: {
		MinWords:      250,
		MaxWords:      300,
		QuestionCount: 3,
		AvgTime:       "3-4 mins",
		Style:         "Topic: Business Case Study. Style: Harvard Business Case style.",
	},
	TopicFiction: {
		MinWords:      200,
		MaxWords:      250,
		QuestionCount: 3,
		AvgTime:       "2-3 mins",
		Style:         "Topic: Fiction exploring Love, Notoriety, and Sadness.",
	},
	TopicQuickRead: {
		MinWords:      150,
		MaxWords:      200,
		QuestionCount: 0,
		AvgTime:       "1-2 mins",
		Style:         "Topic: Random Interesting Knowledge. Style: Engaging and educational.",
	},
}

// registers maps each difficulty to its proficiency instruction.
var registers = map[Difficulty]string{
	DifficultyStandard:  "Proficiency Level: IELTS Band 8-9. Natural, fluent, and precise language.",
	DifficultyChallenge: "Proficiency Level: GRE / Advanced Academic. Use sophisticated vocabulary and complex sentence structures.",
}

func init() {
	if err := validateTables(); err != nil {
		panic(err)
	}
}

// validateTables checks that every enum member has a table entry and
// that each entry is internally consistent.
func validateTables() error {
	for _, t := range AllTopics() {
		p, ok := profiles[t]
		if !ok {
			return fmt.Errorf("content: topic %q has no profile entry", t)
		}
		if p.MinWords <= 0 || p.MaxWords < p.MinWords {
			return fmt.Errorf("content: topic %q has invalid word range %d-%d", t, p.MinWords, p.MaxWords)
		}
		if p.QuestionCount < 0 || p.QuestionCount > 5 {
			return fmt.Errorf("content: topic %q has invalid question count %d", t, p.QuestionCount)
		}
		if p.AvgTime == "" || p.Style == "" {
			return fmt.Errorf("content: topic %q has incomplete profile", t)
		}
	}
	for _, d := range AllDifficulties() {
		if registers[d] == "" {
			return fmt.Errorf("content: difficulty %q has no register entry", d)
		}
	}
	return nil
}

// ProfileFor returns the profile for a topic.
func ProfileFor(t Topic) (Profile, error) {
	p, ok := profiles[t]
	if !ok {
		return Profile{}, fmt.Errorf("content: unknown topic %q", t)
	}
	return p, nil
}

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated session; the first
	// failure stops the pipeline.
	Validators []Validator

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain and
// recommended defaults. Passages are longer than single questions, so
// the token budget is generous.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MaxTokens:   2048,
		Temperature: 0.8,
	}
}
