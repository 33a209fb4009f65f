package order

// Field names accepted by CustomerInfo.Set.
type Field string

const (
	FieldName        Field = "name"
	FieldInvoiceCode Field = "invoiceCode"
)

// CustomerInfo holds whatever the customer typed so far.
// Nothing is validated here; Guard decides whether the flow may move on.
type CustomerInfo struct {
	Name        string `json:"name"`
	InvoiceCode string `json:"invoice_code"`
}

func (c *CustomerInfo) Set(field Field, value string) error {
	switch field {
	case FieldName:
		c.Name = value
	case FieldInvoiceCode:
		c.InvoiceCode = value
	default:
		return ErrUnknownField
	}
	return nil
}
