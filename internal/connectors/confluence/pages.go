package confluence

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/custodia-labs/docprep/internal/core/domain"
)

// GetPage fetches a page by id with its export body and child references.
func (c *Client) GetPage(ctx context.Context, id string) (*domain.Page, error) {
	var raw content
	u := c.endpoint("/rest/api/content/"+url.PathEscape(id), url.Values{"expand": {contentExpand}})
	if err := c.getJSON(ctx, u, &raw); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, &domain.NotFoundError{Kind: "page", Query: id}
		}
		return nil, fmt.Errorf("get page %s: %w", id, err)
	}
	return c.toPage(ctx, raw)
}

// FindPage fetches the first page matching title in a space.
func (c *Client) FindPage(ctx context.Context, spaceKey, title string) (*domain.Page, error) {
	query := fmt.Sprintf("%q in space %s", title, spaceKey)

	var result searchResult
	u := c.endpoint("/rest/api/content", url.Values{
		"spaceKey": {spaceKey},
		"title":    {title},
		"expand":   {contentExpand},
	})
	if err := c.getJSON(ctx, u, &result); err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, &domain.NotFoundError{Kind: "page", Query: query}
		}
		return nil, fmt.Errorf("find page %s: %w", query, err)
	}

	if len(result.Results) == 0 {
		return nil, &domain.NotFoundError{Kind: "page", Query: query}
	}
	return c.toPage(ctx, result.Results[0])
}

// toPage converts a content record, following the child list cursor when
// the expansion was truncated.
func (c *Client) toPage(ctx context.Context, raw content) (*domain.Page, error) {
	page := &domain.Page{
		ID:       raw.ID,
		Title:    raw.Title,
		BodyHTML: raw.Body.ExportView.Value,
		Children: toRefs(raw.Children.Page.Results),
	}

	next := raw.Children.Page.Links.Next
	for next != "" {
		var more childList
		if err := c.getJSON(ctx, c.resolve(next), &more); err != nil {
			return nil, fmt.Errorf("list children of %s: %w", raw.ID, err)
		}
		page.Children = append(page.Children, toRefs(more.Results)...)
		next = more.Links.Next
	}

	return page, nil
}

func isStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
