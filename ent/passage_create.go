// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/readerline/readerline/ent/passage"
)

// PassageCreate is the builder for creating a Passage entity.
type PassageCreate struct {
	config
	mutation *PassageMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *PassageCreate) SetTopic(v string) *PassageCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PassageCreate) SetDifficulty(v string) *PassageCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PassageCreate) SetTitle(v string) *PassageCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *PassageCreate) SetBody(v string) *PassageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetAvgTime sets the "avg_time" field.
func (_c *PassageCreate) SetAvgTime(v string) *PassageCreate {
	_c.mutation.SetAvgTime(v)
	return _c
}

// SetNillableAvgTime sets the "avg_time" field if the given value is not nil.
func (_c *PassageCreate) SetNillableAvgTime(v *string) *PassageCreate {
	if v != nil {
		_c.SetAvgTime(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *PassageCreate) SetSummary(v string) *PassageCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *PassageCreate) SetNillableSummary(v *string) *PassageCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *PassageCreate) SetQuestions(v []map[string]interface{}) *PassageCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PassageCreate) SetCreatedAt(v time.Time) *PassageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PassageCreate) SetNillableCreatedAt(v *time.Time) *PassageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PassageCreate) SetID(v string) *PassageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PassageCreate) SetNillableID(v *string) *PassageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PassageMutation object of the builder.
func (_c *PassageCreate) Mutation() *PassageMutation {
	return _c.mutation
}

// Save creates the Passage in the database.
func (_c *PassageCreate) Save(ctx context.Context) (*Passage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PassageCreate) SaveX(ctx context.Context) *Passage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PassageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PassageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PassageCreate) defaults() {
	if _, ok := _c.mutation.AvgTime(); !ok {
		v := passage.DefaultAvgTime
		_c.mutation.SetAvgTime(v)
	}
	if _, ok := _c.mutation.Summary(); !ok {
		v := passage.DefaultSummary
		_c.mutation.SetSummary(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := passage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := passage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PassageCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Passage.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := passage.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Passage.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Passage.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := passage.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Passage.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Passage.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := passage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Passage.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Passage.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := passage.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Passage.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvgTime(); !ok {
		return &ValidationError{Name: "avg_time", err: errors.New(`ent: missing required field "Passage.avg_time"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Passage.summary"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Passage.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := passage.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Passage.id": %w`, err)}
		}
	}
	return nil
}

func (_c *PassageCreate) sqlSave(ctx context.Context) (*Passage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Passage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PassageCreate) createSpec() (*Passage, *sqlgraph.CreateSpec) {
	var (
		_node = &Passage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(passage.Table, sqlgraph.NewFieldSpec(passage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(passage.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(passage.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(passage.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(passage.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.AvgTime(); ok {
		_spec.SetField(passage.FieldAvgTime, field.TypeString, value)
		_node.AvgTime = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(passage.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(passage.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(passage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PassageCreateBulk is the builder for creating many Passage entities in bulk.
type PassageCreateBulk struct {
	config
	err      error
	builders []*PassageCreate
}

// Save creates the Passage entities in the database.
func (_c *PassageCreateBulk) Save(ctx context.Context) ([]*Passage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Passage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PassageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PassageCreateBulk) SaveX(ctx context.Context) []*Passage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PassageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PassageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
