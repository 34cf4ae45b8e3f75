package prompts

import (
	"embed"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"interviewcoach/api/internal/models"
)

// embeds all .yaml files in the templates folder into Go program at compile time
//
//go:embed templates/*.yaml
var templateFS embed.FS

// Prompt modes, one per template file
const (
	ModeQuestion      = "question"
	ModeEvaluation    = "evaluation"
	ModeRoleQuestions = "role_questions"
	ModeQAFeedback    = "qa_feedback"
)

// loaded prompt template
type promptTemplate struct {
	SystemMessage string `yaml:"system_message"`
	Template      string `yaml:"template"`
}

// Builder turns profiles, questions and answers into LLM prompt strings.
// Stateless after construction; all templates live in embedded YAML files.
type Builder struct {
	templates map[string]promptTemplate
}

// creates a new builder and loads all templates
func NewBuilder() (*Builder, error) {
	b := &Builder{
		templates: make(map[string]promptTemplate),
	}

	if err := b.loadTemplates(); err != nil {
		return nil, fmt.Errorf("failed to load prompt templates: %w", err)
	}

	return b, nil
}

// QuestionPrompt builds the prompt for single-question generation.
func (b *Builder) QuestionPrompt(profile models.UserProfile, category, difficulty string) (string, error) {
	tmpl, err := b.template(ModeQuestion)
	if err != nil {
		return "", err
	}

	result := strings.ReplaceAll(tmpl.Template, "{{.Category}}", category)
	result = strings.ReplaceAll(result, "{{.Difficulty}}", difficulty)
	result = strings.ReplaceAll(result, "{{.CareerField}}", orDefault(profile.CareerField, "General"))
	result = strings.ReplaceAll(result, "{{.ExperienceLevel}}", orDefault(profile.ExperienceLevel, "Entry Level"))
	result = strings.ReplaceAll(result, "{{.TargetRole}}", orDefault(profile.TargetRole, "General Position"))

	return result, nil
}

// EvaluationPrompt builds the prompt asking for a JSON evaluation of an answer.
func (b *Builder) EvaluationPrompt(question, response, category string) (string, error) {
	tmpl, err := b.template(ModeEvaluation)
	if err != nil {
		return "", err
	}

	result := strings.ReplaceAll(tmpl.Template, "{{.Question}}", question)
	result = strings.ReplaceAll(result, "{{.Category}}", category)
	result = strings.ReplaceAll(result, "{{.Response}}", response)

	return result, nil
}

// RoleQuestionsPrompt builds the prompt for a numbered list of role questions.
func (b *Builder) RoleQuestionsPrompt(role string, count int) (string, error) {
	tmpl, err := b.template(ModeRoleQuestions)
	if err != nil {
		return "", err
	}

	result := strings.ReplaceAll(tmpl.Template, "{{.Role}}", role)
	result = strings.ReplaceAll(result, "{{.Count}}", strconv.Itoa(count))

	return result, nil
}

// QAFeedbackPrompt builds the prompt for structured Q&A feedback. The "---"
// delimited sections and the ✅/⚠️/💡 labels in the template are part of the
// output contract, consumers display them verbatim.
func (b *Builder) QAFeedbackPrompt(pairs []models.QAPair, role string) (string, error) {
	tmpl, err := b.template(ModeQAFeedback)
	if err != nil {
		return "", err
	}

	var prompt strings.Builder
	prompt.WriteString(strings.ReplaceAll(tmpl.Template, "{{.Role}}", role))
	for i, pair := range pairs {
		prompt.WriteString(fmt.Sprintf("\nQuestion %d: %s\nCandidate Answer: %s\n", i+1, pair.Question, pair.Answer))
	}

	return prompt.String(), nil
}

// SystemMessage returns the system message for the given mode, or an empty
// string when the mode is unknown.
func (b *Builder) SystemMessage(mode string) string {
	return b.templates[mode].SystemMessage
}

// Modes returns the loaded template modes (readiness checks).
func (b *Builder) Modes() []string {
	modes := make([]string, 0, len(b.templates))
	for mode := range b.templates {
		modes = append(modes, mode)
	}
	return modes
}

func (b *Builder) template(mode string) (promptTemplate, error) {
	tmpl, exists := b.templates[mode]
	if !exists {
		return promptTemplate{}, fmt.Errorf("template not found for mode: %s", mode)
	}
	return tmpl, nil
}

// loadTemplates loads all YAML prompt files from the embedded filesystem
func (b *Builder) loadTemplates() error {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := templateFS.ReadFile("templates/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", entry.Name(), err)
		}

		var tmpl promptTemplate
		if err := yaml.Unmarshal(data, &tmpl); err != nil {
			return fmt.Errorf("failed to parse template file %s: %w", entry.Name(), err)
		}

		b.templates[strings.TrimSuffix(entry.Name(), ".yaml")] = tmpl
	}

	return nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
