package cnst

// SessionCookie is the name of the cookie carrying the opaque session id.
const SessionCookie = "adda_session"

// Multipart form fields that carry uploaded documents.
const (
	FieldOwnershipPaper = "ownershipPaper"
	FieldTenantPhoto    = "photo"
)

// Subdirectories of the upload root, provisioned at startup.
const (
	DirOwnershipPapers = "ownership_papers"
	DirTenantPhotos    = "tenant"
)
