package model

// BlogPost is a single blog entry stored in a language partition.
// Field names follow the JSON documents consumed by the frontend.
type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Summary  string   `json:"summary"`
	Date     string   `json:"date"`
	Image    *string  `json:"image,omitempty"`
	Tags     []string `json:"tags"`
	ReadTime int      `json:"readTime"`
}

// DateLayout is the layout of BlogPost.Date. The value is never parsed back.
const DateLayout = "2006-01-02"
