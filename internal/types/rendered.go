package types

// RenderedApplication is the generated application material for one
// (posting, kit) pair. Both documents are plain markdown text; persistence
// and document creation are the tracker's concern.
type RenderedApplication struct {
	ResumeText      string `json:"resume_text"`
	CoverLetterText string `json:"cover_letter_text"`
}

// DocumentLinks points at the externally created documents for an
// application, when the tracker has produced them.
type DocumentLinks struct {
	ResumeURL      string `json:"resume_url,omitempty"`
	CoverLetterURL string `json:"cover_letter_url,omitempty"`
}
