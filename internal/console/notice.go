package console

type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a user-facing message. It never carries the underlying error.
type Notice struct {
	Kind    NoticeKind
	Message string
}

const (
	MsgLoadFailed      = "Error loading products. Please try again."
	MsgDetailFailed    = "Error loading product details."
	MsgEditFailed      = "Error loading product for editing."
	MsgCreateFailed    = "Error creating product."
	MsgUpdateFailed    = "Error updating product."
	MsgExportFailed    = "Error exporting products."
	MsgNothingToExport = "No data to export!"
	MsgIncompleteForm  = "Please fill in all fields."
	MsgCreated         = "Product created successfully!"
	MsgUpdated         = "Product updated successfully!"
)
