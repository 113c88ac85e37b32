package confluence

import "github.com/custodia-labs/docprep/internal/core/domain"

// contentExpand requests the export body and one level of child pages.
const contentExpand = "body.export_view,children.page"

type links struct {
	Next     string `json:"next,omitempty"`
	Download string `json:"download,omitempty"`
}

type pageRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type childList struct {
	Results []pageRef `json:"results"`
	Links   links     `json:"_links"`
}

type content struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  struct {
		ExportView struct {
			Value string `json:"value"`
		} `json:"export_view"`
	} `json:"body"`
	Children struct {
		Page childList `json:"page"`
	} `json:"children"`
}

type searchResult struct {
	Results []content `json:"results"`
}

type attachment struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Extensions struct {
		MediaType string `json:"mediaType"`
	} `json:"extensions"`
	Metadata struct {
		MediaType string `json:"mediaType"`
	} `json:"metadata"`
	Links links `json:"_links"`
}

type attachmentList struct {
	Results []attachment `json:"results"`
	Links   links        `json:"_links"`
}

func toRefs(in []pageRef) []domain.PageRef {
	refs := make([]domain.PageRef, 0, len(in))
	for _, r := range in {
		refs = append(refs, domain.PageRef{ID: r.ID, Title: r.Title})
	}
	return refs
}

// toAttachment prefers the extension media type over the metadata one.
func toAttachment(a attachment) domain.Attachment {
	mediaType := a.Extensions.MediaType
	if mediaType == "" {
		mediaType = a.Metadata.MediaType
	}
	return domain.Attachment{
		ID:          a.ID,
		Title:       a.Title,
		DownloadURL: a.Links.Download,
		MediaType:   mediaType,
	}
}
