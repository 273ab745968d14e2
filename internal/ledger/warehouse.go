package ledger

// Warehouse is the directory of customers above the per-customer ledgers and
// the root of the persisted document.
type Warehouse struct {
	customers map[string]*Customer
	names     []string
}

func NewWarehouse() *Warehouse {
	return &Warehouse{customers: make(map[string]*Customer)}
}

// Customer looks up a customer by name.
func (w *Warehouse) Customer(name string) (*Customer, error) {
	customer, ok := w.customers[name]
	if !ok {
		return nil, &CustomerNotFoundError{Name: name}
	}
	return customer, nil
}

// EnsureCustomer returns the named customer, creating an empty ledger for a
// name seen for the first time.
func (w *Warehouse) EnsureCustomer(name string) *Customer {
	if customer, ok := w.customers[name]; ok {
		return customer
	}
	customer := NewCustomer(name)
	w.customers[name] = customer
	w.names = append(w.names, name)
	return customer
}

// DeleteCustomer removes a customer and its whole ledger.
func (w *Warehouse) DeleteCustomer(name string) error {
	if _, ok := w.customers[name]; !ok {
		return &CustomerNotFoundError{Name: name}
	}
	delete(w.customers, name)
	for i, n := range w.names {
		if n == name {
			w.names = append(w.names[:i], w.names[i+1:]...)
			break
		}
	}
	return nil
}

// CustomerNames lists the customers in registration order.
func (w *Warehouse) CustomerNames() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

func (w *Warehouse) ToDocument() WarehouseDoc {
	doc := WarehouseDoc{Customers: []CustomerDoc{}}
	for _, name := range w.names {
		doc.Customers = append(doc.Customers, w.customers[name].ToDocument())
	}
	return doc
}

func WarehouseFromDocument(doc WarehouseDoc) (*Warehouse, error) {
	warehouse := NewWarehouse()
	for _, customerDoc := range doc.Customers {
		customer, err := CustomerFromDocument(customerDoc)
		if err != nil {
			return nil, err
		}
		warehouse.customers[customer.Name()] = customer
		warehouse.names = append(warehouse.names, customer.Name())
	}
	return warehouse, nil
}
