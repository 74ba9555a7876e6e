// Package statuspagev1 contains the messages of the openstatus.status_page.v1
// API: public status pages, their components, component groups and
// subscribers.
package statuspagev1

import "time"

// StatusPage is a public page summarising the state of a set of components.
type StatusPage struct {
	ID            string         `json:"id,omitempty"`
	Title         string         `json:"title,omitempty"`
	Description   string         `json:"description,omitempty"`
	Slug          string         `json:"slug,omitempty"`
	CustomDomain  string         `json:"customDomain,omitempty"`
	Published     bool           `json:"published,omitempty"`
	AccessType    PageAccessType `json:"accessType,omitempty"`
	Theme         PageTheme      `json:"theme,omitempty"`
	HomepageURL   string         `json:"homepageUrl,omitempty"`
	ContactURL    string         `json:"contactUrl,omitempty"`
	Icon          string         `json:"icon,omitempty"`
	DefaultLocale string         `json:"defaultLocale,omitempty"`
	CreatedAt     *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time     `json:"updatedAt,omitempty"`
}

// PageComponent is one row of a status page.
type PageComponent struct {
	ID          string            `json:"id,omitempty"`
	PageID      string            `json:"pageId,omitempty"`
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Type        PageComponentType `json:"type,omitempty"`
	MonitorID   string            `json:"monitorId,omitempty"`
	GroupID     string            `json:"groupId,omitempty"`
	Order       int32             `json:"order,omitempty"`
}

// PageComponentGroup groups components under a heading.
type PageComponentGroup struct {
	ID     string `json:"id,omitempty"`
	PageID string `json:"pageId,omitempty"`
	Name   string `json:"name,omitempty"`
}

// PageSubscriber is an email subscription to page updates.
type PageSubscriber struct {
	ID         string     `json:"id,omitempty"`
	PageID     string     `json:"pageId,omitempty"`
	Email      string     `json:"email,omitempty"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
}

// ComponentStatus is the computed status of one component.
type ComponentStatus struct {
	ComponentID string        `json:"componentId,omitempty"`
	Status      OverallStatus `json:"status,omitempty"`
}

// PageSelector identifies a page by ID or by slug. Exactly one should be set.
type PageSelector struct {
	ID   string `json:"id,omitempty"`
	Slug string `json:"slug,omitempty"`
}
