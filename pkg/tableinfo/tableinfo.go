package tableinfo

const (
	PostsTableName = "posts"

	PostIDColumn        = "id"
	PostTitleColumn     = "title"
	PostSummaryColumn   = "summary"
	PostContentColumn   = "content"
	PostCategoryColumn  = "category"
	PostImageURLColumn  = "image_url"
	PostCreatedAtColumn = "created_at"
)
