// Package types provides type definitions for structured data used throughout the directory service.
package types

import "strings"

// OtherCategory is the catch-all bucket that companies are normalised into
// when their original label does not map to a main category.
const OtherCategory = "Other"

// AllCategories is the category selection meaning "no category filter".
const AllCategories = "all"

// Company is one directory entry as stored in the companies table.
// Optional columns are nil when the row has no value.
type Company struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Category         *string `json:"category,omitempty"`
	OriginalCategory *string `json:"original_category,omitempty"`
	TwitterHandle    *string `json:"twitter_handle,omitempty"`
	TwitterURL       *string `json:"twitter_url,omitempty"`
}

// TwitterLink is the rendered profile link for a company row.
type TwitterLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// CategoryValue returns the category, or "" when absent.
func (c *Company) CategoryValue() string {
	return deref(c.Category)
}

// OriginalCategoryValue returns the original category, or "" when absent.
func (c *Company) OriginalCategoryValue() string {
	return deref(c.OriginalCategory)
}

// TwitterHandleValue returns the twitter handle, or "" when absent.
func (c *Company) TwitterHandleValue() string {
	return deref(c.TwitterHandle)
}

// Twitter returns the profile link for the company, or nil when it has no handle.
// An explicit twitter_url wins over the handle-derived URL.
func (c *Company) Twitter() *TwitterLink {
	handle := c.TwitterHandleValue()
	if handle == "" {
		return nil
	}

	link := &TwitterLink{
		Text: "@" + strings.Replace(handle, "@", "", 1),
		URL:  "https://twitter.com/" + handle,
	}
	if u := deref(c.TwitterURL); u != "" {
		link.URL = u
	}
	return link
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
