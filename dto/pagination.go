package dto

// BlogPageDTO is one page of a blog listing.
// currentPage echoes the resolved page; totalPages = ceil(totalBlogs/limit).
//
// swagger:model BlogPageDTO
type BlogPageDTO struct {
	Blogs       []BlogDTO `json:"blogs"`
	TotalBlogs  int64     `json:"totalBlogs" example:"7"`
	CurrentPage int       `json:"currentPage" example:"1"`
	TotalPages  int64     `json:"totalPages" example:"3"`
}
