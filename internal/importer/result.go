package importer

// CreatedProduct records one successfully created product or variation.
type CreatedProduct struct {
	Row  int    `json:"row"`
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	SKU  string `json:"sku"`
}

// FailedRow records one row that could not be imported, with enough context
// to fix and re-submit it.
type FailedRow struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
	Data  Row    `json:"data"`
}

// ImportResult is the structured outcome of one import run. Created preserves
// creation order (simple products first, then each variable parent followed
// by its variations); Failed preserves discovery order with classification
// failures first. Error is set only when the source itself could not be read.
type ImportResult struct {
	Created []CreatedProduct `json:"created"`
	Failed  []FailedRow      `json:"failed"`
	Error   string           `json:"error,omitempty"`
}

func newImportResult() *ImportResult {
	return &ImportResult{
		Created: []CreatedProduct{},
		Failed:  []FailedRow{},
	}
}

func (r *ImportResult) addCreated(row int, id int, name, productType, sku string) {
	r.Created = append(r.Created, CreatedProduct{Row: row, ID: id, Name: name, Type: productType, SKU: sku})
}

func (r *ImportResult) addFailure(index int, message string, data Row) {
	r.Failed = append(r.Failed, FailedRow{Row: lineNumber(index), Error: message, Data: data})
}
