package confluence

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// attachmentPageSize is the page size requested for attachment listings.
const attachmentPageSize = 100

// ListAttachments returns every attachment of a page in remote order.
func (c *Client) ListAttachments(ctx context.Context, pageID string) ([]domain.Attachment, error) {
	var attachments []domain.Attachment

	next := c.endpoint("/rest/api/content/"+url.PathEscape(pageID)+"/child/attachment", url.Values{
		"limit": {fmt.Sprint(attachmentPageSize)},
	})
	for next != "" {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var list attachmentList
		if err := c.getJSON(ctx, next, &list); err != nil {
			return nil, fmt.Errorf("list attachments of %s: %w", pageID, err)
		}
		for _, a := range list.Results {
			attachments = append(attachments, toAttachment(a))
		}

		next = ""
		if list.Links.Next != "" {
			next = c.resolve(list.Links.Next)
		}
	}

	return attachments, nil
}

// Download opens an attachment's binary content.
func (c *Client) Download(ctx context.Context, a domain.Attachment) (io.ReadCloser, error) {
	if a.DownloadURL == "" {
		return nil, fmt.Errorf("download %s: attachment has no download link", a.Title)
	}

	resp, err := c.do(ctx, c.resolve(a.DownloadURL))
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", a.Title, err)
	}
	return resp.Body, nil
}
