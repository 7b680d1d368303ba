// Package view holds the state of the product list view and the transitions
// between its states. Nothing here performs I/O: callers run the requests and
// report their outcome back through the matching transition.
//
// State values are treated as immutable. Every transition returns a new State
// and leaves the receiver, including its Products backing array, untouched.
package view

import "github.com/rogerio-castellano/shop-inventory/internal/models"

// State is the complete state of the product list view.
type State struct {
	// Products is the displayed collection, in server order followed by local appends.
	Products []models.Product
	AddForm  AddForm
	// Draft is the single row in edit mode, nil when every row is being viewed.
	Draft *EditDraft
}

// AddForm is the add-product form and its visibility.
type AddForm struct {
	Visible bool
	Fields  models.ProductInput
}

// EditDraft is the working copy of the row with identifier ID.
type EditDraft struct {
	ID     int
	Fields models.ProductInput
}

// New returns the state of a freshly activated view: nothing loaded, form hidden
// with its default values, no draft.
func New() State {
	return State{
		Products: []models.Product{},
		AddForm:  AddForm{Fields: defaultFields()},
	}
}

func defaultFields() models.ProductInput {
	q, p := 0, 0.0
	return models.ProductInput{ProductName: "", Quantity: &q, Price: &p}
}

// Editing reports whether the row with the given identifier is in edit mode.
func (s State) Editing(id int) bool {
	return s.Draft != nil && s.Draft.ID == id
}
