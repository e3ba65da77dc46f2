package tracker

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"

	"github.com/jonathan/jobsearch-agent/internal/types"
)

// DocsClient creates Google Docs for rendered applications. Like the sheets
// client it expects pre-authenticated services.
type DocsClient struct {
	docs     *docs.Service
	drive    *drive.Service
	folderID string
	logger   *zap.Logger
}

// NewDocsClient wraps authenticated docs and drive services. folderID may be
// empty; documents then stay in the drive root.
func NewDocsClient(docsSvc *docs.Service, driveSvc *drive.Service, folderID string, logger *zap.Logger) *DocsClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocsClient{docs: docsSvc, drive: driveSvc, folderID: folderID, logger: logger}
}

// CreateApplicationDocs creates one document per rendered artifact and
// returns their links.
func (c *DocsClient) CreateApplicationDocs(ctx context.Context, job *types.JobPosting, app types.RenderedApplication) (types.DocumentLinks, error) {
	resumeURL, err := c.createDoc(ctx,
		fmt.Sprintf("Resume - %s - %s", job.Company, job.Title), app.ResumeText)
	if err != nil {
		return types.DocumentLinks{}, err
	}

	coverURL, err := c.createDoc(ctx,
		fmt.Sprintf("Cover Letter - %s - %s", job.Company, job.Title), app.CoverLetterText)
	if err != nil {
		return types.DocumentLinks{ResumeURL: resumeURL}, err
	}

	c.logger.Info("application documents created",
		zap.String("company", job.Company), zap.String("role", job.Title))
	return types.DocumentLinks{ResumeURL: resumeURL, CoverLetterURL: coverURL}, nil
}

func (c *DocsClient) createDoc(ctx context.Context, title, body string) (string, error) {
	doc, err := c.docs.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create document %q: %w", title, err)
	}

	_, err = c.docs.Documents.BatchUpdate(doc.DocumentId, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{{
			InsertText: &docs.InsertTextRequest{
				Text:     body,
				Location: &docs.Location{Index: 1},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to write document %q: %w", title, err)
	}

	if c.folderID != "" {
		_, err = c.drive.Files.Update(doc.DocumentId, nil).
			AddParents(c.folderID).
			Context(ctx).
			Do()
		if err != nil {
			return "", fmt.Errorf("failed to move document %q: %w", title, err)
		}
	}

	return "https://docs.google.com/document/d/" + doc.DocumentId + "/edit", nil
}
