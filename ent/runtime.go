// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/readerline/readerline/ent/attempt"
	"github.com/readerline/readerline/ent/llmrequestevent"
	"github.com/readerline/readerline/ent/passage"
	"github.com/readerline/readerline/ent/reader"
	"github.com/readerline/readerline/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescPassageID is the schema descriptor for passage_id field.
	attemptDescPassageID := attemptFields[1].Descriptor()
	// attempt.PassageIDValidator is a validator for the "passage_id" field. It is called by the builders before save.
	attempt.PassageIDValidator = attemptDescPassageID.Validators[0].(func(string) error)
	// attemptDescTopic is the schema descriptor for topic field.
	attemptDescTopic := attemptFields[2].Descriptor()
	// attempt.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	attempt.TopicValidator = attemptDescTopic.Validators[0].(func(string) error)
	// attemptDescDifficulty is the schema descriptor for difficulty field.
	attemptDescDifficulty := attemptFields[3].Descriptor()
	// attempt.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	attempt.DifficultyValidator = attemptDescDifficulty.Validators[0].(func(string) error)
	// attemptDescScore is the schema descriptor for score field.
	attemptDescScore := attemptFields[5].Descriptor()
	// attempt.DefaultScore holds the default value on creation for the score field.
	attempt.DefaultScore = attemptDescScore.Default.(int)
	// attemptDescTotal is the schema descriptor for total field.
	attemptDescTotal := attemptFields[6].Descriptor()
	// attempt.DefaultTotal holds the default value on creation for the total field.
	attempt.DefaultTotal = attemptDescTotal.Default.(int)
	// attemptDescCompleted is the schema descriptor for completed field.
	attemptDescCompleted := attemptFields[7].Descriptor()
	// attempt.DefaultCompleted holds the default value on creation for the completed field.
	attempt.DefaultCompleted = attemptDescCompleted.Default.(bool)
	// attemptDescStartedAt is the schema descriptor for started_at field.
	attemptDescStartedAt := attemptFields[8].Descriptor()
	// attempt.DefaultStartedAt holds the default value on creation for the started_at field.
	attempt.DefaultStartedAt = attemptDescStartedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	passageFields := schema.Passage{}.Fields()
	_ = passageFields
	// passageDescTopic is the schema descriptor for topic field.
	passageDescTopic := passageFields[1].Descriptor()
	// passage.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	passage.TopicValidator = passageDescTopic.Validators[0].(func(string) error)
	// passageDescDifficulty is the schema descriptor for difficulty field.
	passageDescDifficulty := passageFields[2].Descriptor()
	// passage.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	passage.DifficultyValidator = passageDescDifficulty.Validators[0].(func(string) error)
	// passageDescTitle is the schema descriptor for title field.
	passageDescTitle := passageFields[3].Descriptor()
	// passage.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	passage.TitleValidator = passageDescTitle.Validators[0].(func(string) error)
	// passageDescBody is the schema descriptor for body field.
	passageDescBody := passageFields[4].Descriptor()
	// passage.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	passage.BodyValidator = passageDescBody.Validators[0].(func(string) error)
	// passageDescAvgTime is the schema descriptor for avg_time field.
	passageDescAvgTime := passageFields[5].Descriptor()
	// passage.DefaultAvgTime holds the default value on creation for the avg_time field.
	passage.DefaultAvgTime = passageDescAvgTime.Default.(string)
	// passageDescSummary is the schema descriptor for summary field.
	passageDescSummary := passageFields[6].Descriptor()
	// passage.DefaultSummary holds the default value on creation for the summary field.
	passage.DefaultSummary = passageDescSummary.Default.(string)
	// passageDescCreatedAt is the schema descriptor for created_at field.
	passageDescCreatedAt := passageFields[8].Descriptor()
	// passage.DefaultCreatedAt holds the default value on creation for the created_at field.
	passage.DefaultCreatedAt = passageDescCreatedAt.Default.(func() time.Time)
	// passageDescID is the schema descriptor for id field.
	passageDescID := passageFields[0].Descriptor()
	// passage.DefaultID holds the default value on creation for the id field.
	passage.DefaultID = passageDescID.Default.(func() string)
	// passage.IDValidator is a validator for the "id" field. It is called by the builders before save.
	passage.IDValidator = passageDescID.Validators[0].(func(string) error)
	readerFields := schema.Reader{}.Fields()
	_ = readerFields
	// readerDescName is the schema descriptor for name field.
	readerDescName := readerFields[0].Descriptor()
	// reader.NameValidator is a validator for the "name" field. It is called by the builders before save.
	reader.NameValidator = readerDescName.Validators[0].(func(string) error)
	// readerDescCreatedAt is the schema descriptor for created_at field.
	readerDescCreatedAt := readerFields[1].Descriptor()
	// reader.DefaultCreatedAt holds the default value on creation for the created_at field.
	reader.DefaultCreatedAt = readerDescCreatedAt.Default.(func() time.Time)
}
