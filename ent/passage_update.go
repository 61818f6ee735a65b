// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/readerline/readerline/ent/passage"
	"github.com/readerline/readerline/ent/predicate"
)

// PassageUpdate is the builder for updating Passage entities.
type PassageUpdate struct {
	config
	hooks    []Hook
	mutation *PassageMutation
}

// Where appends a list predicates to the PassageUpdate builder.
func (_u *PassageUpdate) Where(ps ...predicate.Passage) *PassageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PassageUpdate) SetTopic(v string) *PassageUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PassageUpdate) SetNillableTopic(v *string) *PassageUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PassageUpdate) SetDifficulty(v string) *PassageUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PassageUpdate) SetNillableDifficulty(v *string) *PassageUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PassageUpdate) SetTitle(v string) *PassageUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PassageUpdate) SetNillableTitle(v *string) *PassageUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *PassageUpdate) SetBody(v string) *PassageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PassageUpdate) SetNillableBody(v *string) *PassageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetAvgTime sets the "avg_time" field.
func (_u *PassageUpdate) SetAvgTime(v string) *PassageUpdate {
	_u.mutation.SetAvgTime(v)
	return _u
}

// SetNillableAvgTime sets the "avg_time" field if the given value is not nil.
func (_u *PassageUpdate) SetNillableAvgTime(v *string) *PassageUpdate {
	if v != nil {
		_u.SetAvgTime(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *PassageUpdate) SetSummary(v string) *PassageUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *PassageUpdate) SetNillableSummary(v *string) *PassageUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PassageUpdate) SetQuestions(v []map[string]interface{}) *PassageUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PassageUpdate) AppendQuestions(v []map[string]interface{}) *PassageUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *PassageUpdate) ClearQuestions() *PassageUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// Mutation returns the PassageMutation object of the builder.
func (_u *PassageUpdate) Mutation() *PassageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PassageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PassageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PassageUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := passage.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Passage.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := passage.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Passage.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := passage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Passage.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := passage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Passage.body": %w`, err)}
		}
	}
	return nil
}

func (_u *PassageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passage.Table, passage.Columns, sqlgraph.NewFieldSpec(passage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(passage.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(passage.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(passage.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(passage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.AvgTime(); ok {
		_spec.SetField(passage.FieldAvgTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(passage.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(passage.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, passage.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(passage.FieldQuestions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PassageUpdateOne is the builder for updating a single Passage entity.
type PassageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PassageMutation
}

// SetTopic sets the "topic" field.
func (_u *PassageUpdateOne) SetTopic(v string) *PassageUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PassageUpdateOne) SetNillableTopic(v *string) *PassageUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PassageUpdateOne) SetDifficulty(v string) *PassageUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PassageUpdateOne) SetNillableDifficulty(v *string) *PassageUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PassageUpdateOne) SetTitle(v string) *PassageUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PassageUpdateOne) SetNillableTitle(v *string) *PassageUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *PassageUpdateOne) SetBody(v string) *PassageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *PassageUpdateOne) SetNillableBody(v *string) *PassageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetAvgTime sets the "avg_time" field.
func (_u *PassageUpdateOne) SetAvgTime(v string) *PassageUpdateOne {
	_u.mutation.SetAvgTime(v)
	return _u
}

// SetNillableAvgTime sets the "avg_time" field if the given value is not nil.
func (_u *PassageUpdateOne) SetNillableAvgTime(v *string) *PassageUpdateOne {
	if v != nil {
		_u.SetAvgTime(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *PassageUpdateOne) SetSummary(v string) *PassageUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *PassageUpdateOne) SetNillableSummary(v *string) *PassageUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PassageUpdateOne) SetQuestions(v []map[string]interface{}) *PassageUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PassageUpdateOne) AppendQuestions(v []map[string]interface{}) *PassageUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *PassageUpdateOne) ClearQuestions() *PassageUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// Mutation returns the PassageMutation object of the builder.
func (_u *PassageUpdateOne) Mutation() *PassageMutation {
	return _u.mutation
}

// Where appends a list predicates to the PassageUpdate builder.
func (_u *PassageUpdateOne) Where(ps ...predicate.Passage) *PassageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PassageUpdateOne) Select(field string, fields ...string) *PassageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Passage entity.
func (_u *PassageUpdateOne) Save(ctx context.Context) (*Passage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PassageUpdateOne) SaveX(ctx context.Context) *Passage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PassageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PassageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PassageUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := passage.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Passage.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := passage.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Passage.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := passage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Passage.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := passage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Passage.body": %w`, err)}
		}
	}
	return nil
}

func (_u *PassageUpdateOne) sqlSave(ctx context.Context) (_node *Passage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passage.Table, passage.Columns, sqlgraph.NewFieldSpec(passage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Passage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, passage.FieldID)
		for _, f := range fields {
			if !passage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != passage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(passage.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(passage.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(passage.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(passage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.AvgTime(); ok {
		_spec.SetField(passage.FieldAvgTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(passage.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(passage.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, passage.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(passage.FieldQuestions, field.TypeJSON)
	}
	_node = &Passage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
