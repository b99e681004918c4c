package documents

// UploadResponse is the outward-facing result of an upload.
type UploadResponse struct {
	DocumentID int64  `json:"document_id"`
	Filename   string `json:"filename"`
}

func toResponse(doc Document) UploadResponse {
	return UploadResponse{
		DocumentID: doc.ID,
		Filename:   doc.Filename,
	}
}
