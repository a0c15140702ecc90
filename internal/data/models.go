package data

// Document is a downloadable file reference. The file contents live in the
// remote file store; only the filename is persisted here.
type Document struct {
	ID         int64  `db:"id"`
	Filename   string `db:"filename"`
	CategoryID *int64 `db:"category_id"`
}

// Category groups documents for the download listing.
type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Message string `db:"message"`
}

// ContactInfo is a display-only row of contact details (address, phone, ...).
type ContactInfo struct {
	ID    int64  `db:"id"`
	Label string `db:"label"`
	Value string `db:"value"`
}

// PageInformation holds the site-wide display text. Only the first row is
// ever read.
type PageInformation struct {
	ID      int64  `db:"id"`
	Title   string `db:"title"`
	Tagline string `db:"tagline"`
	About   string `db:"about"`
}

// ProfileAbout is one section of the profile page. Detail holds paragraphs
// joined by a literal "/n" marker.
type ProfileAbout struct {
	ID     int64  `db:"id"`
	Title  string `db:"title"`
	Detail string `db:"detail"`
}

// Video is a YouTube link shown on the video listing.
type Video struct {
	ID    int64  `db:"id"`
	Title string `db:"title"`
	URL   string `db:"url"`
}

// User is an administrative account. Password holds an argon2id hash.
type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
}
