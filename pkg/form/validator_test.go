package form_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vetform/pkg/feedback"
	"github.com/dmitrymomot/vetform/pkg/field"
	"github.com/dmitrymomot/vetform/pkg/form"
	"github.com/dmitrymomot/vetform/pkg/validator"
)

func newValidator(b *feedback.Board) *form.Validator {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	return form.NewValidator(field.NewChecker(
		field.WithClock(func() time.Time { return now }),
		field.WithLocation(time.UTC),
	), b)
}

func TestValidateInvalidAndWarning(t *testing.T) {
	t.Parallel()

	b := feedback.NewBoard()
	f := form.New("mascota", "POST",
		field.NewInput("peso", "number", "0"),
		field.NewInput("edad", "number", "30"),
	)

	res := newValidator(b).Validate(context.Background(), f)

	assert.False(t, res.Valid())
	assert.Equal(t, 2, res.Recognized)
	first, ok := res.FirstInvalid()
	require.True(t, ok)
	assert.Equal(t, "peso", first.Name())
	assert.Len(t, res.Invalid(), 1)

	assert.Equal(t, feedback.StateInvalid, b.View("peso").State)
	assert.Equal(t, validator.SeverityWarning, b.View("edad").Severity)
}

func TestValidateWarningsOnly(t *testing.T) {
	t.Parallel()

	b := feedback.NewBoard()
	f := form.New("mascota", "POST",
		field.NewInput("peso", "number", "150"),
		field.NewInput("edad", "number", "30"),
	)

	res := newValidator(b).Validate(context.Background(), f)

	assert.True(t, res.Valid())
	_, ok := res.FirstInvalid()
	assert.False(t, ok)
	assert.Equal(t, map[validator.Severity]int{validator.SeverityWarning: 2}, res.Counts())
}

func TestValidateSkipsUnclassified(t *testing.T) {
	t.Parallel()

	b := feedback.NewBoard()
	f := form.New("mascota", "POST",
		field.NewInput("observaciones", "text", "x"),
		field.NewInput("nombre_mascota", "text", "L"),
		field.NewInput("csrf", "hidden", "token"),
	)

	res := newValidator(b).Validate(context.Background(), f)

	assert.Equal(t, 1, res.Recognized)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, field.Name, res.Outcomes[0].Category)
	assert.Equal(t, []string{"nombre_mascota"}, b.Fields())
	assert.False(t, res.Valid())
}

func TestValidateEmptyFieldsPass(t *testing.T) {
	t.Parallel()

	b := feedback.NewBoard()
	f := form.New("producto", "POST",
		field.NewInput("codigo", "text", ""),
		field.NewInput("stock", "number", ""),
		field.NewInput("precio", "number", ""),
	)

	res := newValidator(b).Validate(context.Background(), f)

	assert.True(t, res.Valid())
	assert.Equal(t, 3, res.Recognized)
	assert.Empty(t, b.Fields(), "empty values render nothing")
}

func TestValidateReplacesStaleFeedback(t *testing.T) {
	t.Parallel()

	b := feedback.NewBoard()
	peso := field.NewInput("peso", "number", "0")
	f := form.New("mascota", "POST", peso)
	v := newValidator(b)

	v.Validate(context.Background(), f)
	assert.Equal(t, feedback.StateInvalid, b.View("peso").State)

	peso.SetValue("5")
	assert.True(t, v.Validate(context.Background(), f).Valid())
	assert.Equal(t, feedback.StateValid, b.View("peso").State)
}

func TestValidateCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := form.NewValidator(nil, nil).Validate(ctx, form.New("mascota", "POST", field.NewInput("peso", "number", "5")))
	assert.False(t, res.Valid())
	assert.ErrorIs(t, res.Err, context.Canceled)
}

func TestValidateWithoutRenderer(t *testing.T) {
	t.Parallel()

	v := form.NewValidator(nil, nil)
	res := v.Validate(context.Background(), form.New("contacto", "POST", field.NewInput("correo", "email", "ana")))
	assert.False(t, res.Valid())
	assert.Equal(t, 1, v.Recognized(form.New("contacto", "POST", field.NewInput("correo", "email", ""))))
}

func TestStaticForm(t *testing.T) {
	t.Parallel()

	f := form.New("mascota", "post", field.NewInput("peso", "number", "1"))
	assert.True(t, form.IsPost(f))
	assert.False(t, form.IsPost(form.New("buscar", "GET")))

	h, ok := f.Field("peso")
	require.True(t, ok)
	assert.Equal(t, "1", h.Value())
	_, ok = f.Field("edad")
	assert.False(t, ok)
}
