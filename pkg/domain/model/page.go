package model

// PageField names a single-valued field of a pull request page.
type PageField string

const (
	PageFieldTitle     PageField = "title"
	PageFieldBody      PageField = "body"
	PageFieldHeadRef   PageField = "head_ref"
	PageFieldBaseRef   PageField = "base_ref"
	PageFieldUpdatedAt PageField = "updated_at"
)

// PageList names a multi-valued field of a pull request page.
type PageList string

const (
	PageListLabels PageList = "labels"
)
