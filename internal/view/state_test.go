package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rogerio-castellano/shop-inventory/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func intPtr(n int) *int { return &n }
func floatPtr(f float64) *float64 { return &f }
func widget() models.Product { return models.Product{ID: 1, ProductName: "Widget", Quantity: 5, Price: 2.5} }
func gadget() models.Product { return models.Product{ID: 2, ProductName: "Gadget", Quantity: 3, Price: 9.99} }
func sprocket() models.Product { return models.Product{ID: 3, ProductName: "Sprocket", Quantity: 0, Price: 1} }
func fields(s State) (string, int, float64) {
	f := s.AddForm.Fields
	return f.ProductName, *f.Quantity, *f.Price
}

func TestNew_Defaults(t *testing.T) {
	s := New()

	assert.Empty(t, s.Products)
	assert.False(t, s.AddForm.Visible)
	assert.Nil(t, s.Draft)
	name, qty, price := fields(s)
	assert.Equal(t, "", name)
	assert.Equal(t, 0, qty)
	assert.Equal(t, 0.0, price)
}

func TestLoaded_KeepsResponseOrder(t *testing.T) {
	resp := []models.Product{sprocket(), widget(), gadget()}

	s := New().Loaded(resp)

	require.Len(t, s.Products, 3)
	if diff := cmp.Diff(resp, s.Products); diff != "" {
		t.Errorf("displayed collection mismatch (-want +got):\n%s", diff)
	}

	resp[0].ProductName = "changed"
	assert.Equal(t, "Sprocket", s.Products[0].ProductName, "state must not alias the response slice")
}

func TestLoadFailed_KeepsPreviousCollection(t *testing.T) {
	s := New().LoadFailed()
	assert.Empty(t, s.Products)

	s = New().Loaded([]models.Product{widget()}).LoadFailed()
	assert.Equal(t, []models.Product{widget()}, s.Products)
}

func TestToggleAddForm(t *testing.T) {
	s := New().ToggleAddForm()
	assert.True(t, s.AddForm.Visible)

	s = s.ToggleAddForm()
	assert.False(t, s.AddForm.Visible)
}

func TestCreated_AppendsResetsAndHides(t *testing.T) {
	s := New().Loaded([]models.Product{widget()}).
		ToggleAddForm().
		SetAddName("Gadget").
		SetAddQuantity("3").
		SetAddPrice("9.99")

	payload := s.AddPayload()
	assert.Equal(t, models.ProductInput{ProductName: "Gadget", Quantity: intPtr(3), Price: floatPtr(9.99)}, payload)

	before := len(s.Products)
	s = s.Created(gadget())

	assert.Len(t, s.Products, before+1)
	if diff := cmp.Diff([]models.Product{widget(), gadget()}, s.Products); diff != "" {
		t.Errorf("displayed collection mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, s.AddForm.Visible)
	name, qty, price := fields(s)
	assert.Equal(t, "", name)
	assert.Equal(t, 0, qty)
	assert.Equal(t, 0.0, price)
}

func TestCreateFailed_LeavesTypedValues(t *testing.T) {
	s := New().Loaded([]models.Product{widget()}).
		ToggleAddForm().
		SetAddName("Gadget").
		SetAddQuantity("3").
		SetAddPrice("9.99").
		CreateFailed()

	assert.Equal(t, []models.Product{widget()}, s.Products)
	assert.True(t, s.AddForm.Visible)
	name, qty, price := fields(s)
	assert.Equal(t, "Gadget", name)
	assert.Equal(t, 3, qty)
	assert.Equal(t, 9.99, price)
}

func TestCreated_DoesNotMutatePreviousState(t *testing.T) {
	base := New().Loaded([]models.Product{widget()})
	// leave spare capacity so an in-place append would be visible
	base.Products = append(make([]models.Product, 0, 4), base.Products...)

	a := base.Created(gadget())
	b := base.Created(sprocket())

	assert.Equal(t, "Gadget", a.Products[1].ProductName)
	assert.Equal(t, "Sprocket", b.Products[1].ProductName)
	assert.Len(t, base.Products, 1)
}

func TestEnterEdit_SwitchDiscardsFirstDraft(t *testing.T) {
	s := New().Loaded([]models.Product{widget(), gadget()}).
		EnterEdit(widget()).
		EditName("Widget XL").
		EditQuantity("50").
		EnterEdit(gadget())

	require.NotNil(t, s.Draft)
	assert.Equal(t, EditDraft{ID: 2, Fields: gadget().Input()}, *s.Draft)
	assert.False(t, s.Editing(1))
	assert.True(t, s.Editing(2))
	assert.Equal(t, []models.Product{widget(), gadget()}, s.Products, "unsaved edits never reach the collection")
}

func TestEditFields_OnlyTouchDraft(t *testing.T) {
	s := New().Loaded([]models.Product{widget()}).EnterEdit(widget())
	edited := s.EditName("Bolt").EditQuantity("7").EditPrice("0.25")

	assert.Equal(t, models.ProductInput{ProductName: "Bolt", Quantity: intPtr(7), Price: floatPtr(0.25)}, edited.Draft.Fields)
	assert.Equal(t, widget().Input(), s.Draft.Fields, "earlier state keeps its draft")
	assert.Equal(t, []models.Product{widget()}, edited.Products)
}

func TestEditFields_WithoutDraftAreNoops(t *testing.T) {
	s := New().Loaded([]models.Product{widget()})

	got := s.EditName("x").EditQuantity("1").EditPrice("1")

	assert.Nil(t, got.Draft)
	assert.Equal(t, s, got)
}

func TestEditQuantity_InvalidInputBecomesNaN(t *testing.T) {
	s := New().EnterEdit(widget()).EditQuantity("abc").EditPrice("")

	assert.Nil(t, s.Draft.Fields.Quantity)
	assert.Nil(t, s.Draft.Fields.Price)
}

func TestSaveRequest_NoDraft(t *testing.T) {
	_, _, ok := New().Loaded([]models.Product{widget()}).SaveRequest()
	assert.False(t, ok)
}

func TestSaveRequest_UsesDraftValues(t *testing.T) {
	s := New().EnterEdit(widget()).EditPrice("3")

	id, payload, ok := s.SaveRequest()

	require.True(t, ok)
	assert.Equal(t, 1, id)
	assert.Equal(t, models.ProductInput{ProductName: "Widget", Quantity: intPtr(5), Price: floatPtr(3)}, payload)
}

func TestSaved_ReplacesOnlyMatchingEntry(t *testing.T) {
	s := New().Loaded([]models.Product{widget(), gadget(), sprocket()}).EnterEdit(gadget())
	updated := models.Product{ID: 2, ProductName: "Gadget Pro", Quantity: 4, Price: 12}

	got := s.Saved(updated)

	want := []models.Product{widget(), updated, sprocket()}
	if diff := cmp.Diff(want, got.Products); diff != "" {
		t.Errorf("displayed collection mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, got.Draft)
	assert.Equal(t, gadget(), s.Products[1], "earlier state keeps the old record")
}

func TestSaved_ReplacesEveryDuplicateID(t *testing.T) {
	dup := widget()
	dup.ProductName = "Widget copy"
	s := New().Loaded([]models.Product{widget(), dup})
	updated := models.Product{ID: 1, ProductName: "One", Quantity: 1, Price: 1}

	got := s.Saved(updated)

	assert.Equal(t, []models.Product{updated, updated}, got.Products)
}

func TestSaveFailed_StaysInEditMode(t *testing.T) {
	s := New().Loaded([]models.Product{widget()}).EnterEdit(widget()).EditName("Widget 2").SaveFailed()

	require.NotNil(t, s.Draft)
	assert.True(t, s.Editing(1))
	assert.Equal(t, "Widget 2", s.Draft.Fields.ProductName)
	assert.Equal(t, []models.Product{widget()}, s.Products)
}

func TestCancelEdit(t *testing.T) {
	s := New().EnterEdit(widget()).CancelEdit()
	assert.Nil(t, s.Draft)
}

func TestScenario_LoadThenAdd(t *testing.T) {
	s := New().Loaded([]models.Product{widget()})

	s = s.ToggleAddForm().SetAddName("Gadget").SetAddQuantity("3").SetAddPrice("9.99")
	s = s.Created(gadget())

	assert.Equal(t, []models.Product{widget(), gadget()}, s.Products)
	assert.False(t, s.AddForm.Visible)
}
