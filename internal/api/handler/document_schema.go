package handler

type createDocumentRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

// updateDocumentRequest deliberately has no owner or id field: a client can
// never move a document to another owner or identifier through an update.
type updateDocumentRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}
