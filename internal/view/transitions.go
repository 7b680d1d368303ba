package view

import "github.com/rogerio-castellano/shop-inventory/internal/models"

// Loaded replaces the displayed collection with the list response.
func (s State) Loaded(products []models.Product) State {
	s.Products = append([]models.Product(nil), products...)
	if s.Products == nil {
		s.Products = []models.Product{}
	}
	return s
}

// LoadFailed keeps the previous collection.
func (s State) LoadFailed() State {
	return s
}

// ToggleAddForm shows the add form when hidden and hides it when shown.
func (s State) ToggleAddForm() State {
	s.AddForm.Visible = !s.AddForm.Visible
	return s
}

func (s State) SetAddName(name string) State {
	s.AddForm.Fields.ProductName = name
	return s
}

func (s State) SetAddQuantity(raw string) State {
	s.AddForm.Fields.Quantity = ParseQuantity(raw)
	return s
}

func (s State) SetAddPrice(raw string) State {
	s.AddForm.Fields.Price = ParsePrice(raw)
	return s
}

// AddPayload is the body of the create request for the current form values.
func (s State) AddPayload() models.ProductInput {
	return s.AddForm.Fields
}

// Created appends the server's record, resets the form to its defaults and hides it.
func (s State) Created(p models.Product) State {
	products := make([]models.Product, 0, len(s.Products)+1)
	products = append(products, s.Products...)
	s.Products = append(products, p)
	s.AddForm = AddForm{Fields: defaultFields()}
	return s
}

// CreateFailed leaves the collection, the typed values and the form visibility as they are.
func (s State) CreateFailed() State {
	return s
}

// EnterEdit puts p in edit mode with a copy of its current values. A draft for
// any other row is dropped.
func (s State) EnterEdit(p models.Product) State {
	s.Draft = &EditDraft{ID: p.ID, Fields: p.Input()}
	return s
}

// CancelEdit drops the draft without saving it.
func (s State) CancelEdit() State {
	s.Draft = nil
	return s
}

func (s State) EditName(name string) State {
	return s.withDraft(func(f *models.ProductInput) { f.ProductName = name })
}

func (s State) EditQuantity(raw string) State {
	return s.withDraft(func(f *models.ProductInput) { f.Quantity = ParseQuantity(raw) })
}

func (s State) EditPrice(raw string) State {
	return s.withDraft(func(f *models.ProductInput) { f.Price = ParsePrice(raw) })
}

// withDraft applies change to a copy of the draft. Without a draft it is a no-op.
func (s State) withDraft(change func(*models.ProductInput)) State {
	if s.Draft == nil {
		return s
	}
	d := *s.Draft
	change(&d.Fields)
	s.Draft = &d
	return s
}

// SaveRequest returns the identifier and body of the update request for the
// current draft. ok is false when no row is in edit mode and nothing must be sent.
func (s State) SaveRequest() (id int, payload models.ProductInput, ok bool) {
	if s.Draft == nil {
		return 0, models.ProductInput{}, false
	}
	return s.Draft.ID, s.Draft.Fields, true
}

// Saved replaces every entry whose identifier matches p with p and leaves edit mode.
func (s State) Saved(p models.Product) State {
	products := make([]models.Product, len(s.Products))
	for i, existing := range s.Products {
		if existing.ID == p.ID {
			products[i] = p
			continue
		}
		products[i] = existing
	}
	s.Products = products
	s.Draft = nil
	return s
}

// SaveFailed keeps the row in edit mode so the save can be retried.
func (s State) SaveFailed() State {
	return s
}
