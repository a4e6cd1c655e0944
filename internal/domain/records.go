package domain

// NoticeScope names what a notice list hangs off. It is the :type segment
// of the notice endpoints.
type NoticeScope string

const (
	NoticeCollection NoticeScope = "collection"
	NoticeRent       NoticeScope = "rent"
	NoticeSell       NoticeScope = "sell"
	NoticeDevelop    NoticeScope = "develop"
	NoticeMarket     NoticeScope = "market"
)

// NoticeScopeFor maps a tenement kind to its notice scope.
func NoticeScopeFor(k TenementKind) NoticeScope {
	return NoticeScope(k)
}

// Notice is a scheduled visit or reminder.
// An empty ID marks a notice the server has not stored yet. Key is a
// client-side row key and never leaves the process.
type Notice struct {
	ID         string `json:"id"`
	VisitDate  string `json:"visitDate"`
	Record     string `json:"record"`
	RemindDate string `json:"remindDate"`
	Remind     string `json:"remind"`

	Key string `json:"-"`
}

// NoticeBatch is the outcome of editing a notice list: notices to create
// (no id yet), stored notices to update, and ids of stored notices to delete.
type NoticeBatch struct {
	Create []Notice
	Update []Notice
	Delete []string
}

// Empty reports whether the batch has nothing to send.
func (b NoticeBatch) Empty() bool {
	return len(b.Create) == 0 && len(b.Update) == 0 && len(b.Delete) == 0
}

// CollectionListItem is one row of GET /collections.
type CollectionListItem struct {
	CollectionID    int64  `json:"collection_id"`
	CollectionName  string `json:"collection_name"`
	TenementAddress string `json:"tenement_address"`
	CollectionType  string `json:"collection_type"`
	Price           string `json:"price"`
}

// Collection is the edit record behind /collection/:id.
// CollectionID is taken from the request path.
type Collection struct {
	CollectionID         string   `json:"collection_id,omitempty"`
	TenementAddress      string   `json:"tenement_address"`
	CollectionName       string   `json:"collection_name"`
	CollectionType       string   `json:"collection_type"`
	Price                string   `json:"price"`
	Payment              string   `json:"payment"`
	CollectionRemark     string   `json:"collection_remark"`
	CollectionDate       string   `json:"collection_date"`
	RemittanceBank       string   `json:"remittance_bank"`
	RemittanceAccount    string   `json:"remittance_account"`
	CusRemittanceBank    string   `json:"cus_remittance_bank"`
	CusRemittanceAccount string   `json:"cus_remittance_account"`
	CollectionComplete   string   `json:"collection_complete"`
	Notices              []Notice `json:"notices"`
}

// UserListItem is one row of GET /users.
type UserListItem struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Status    string `json:"status"`
}

// User is the edit record behind /user/:id.
type User struct {
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	Status       string `json:"status"`
	UserPassword string `json:"user_password"`
	IsAdmin      string `json:"isadmin"`
}

// Role is the answer of GET /user/auth.
type Role struct {
	IsAdmin bool `json:"isadmin"`
}

// Credentials are posted to /user/login.
type Credentials struct {
	UserEmail    string `json:"user_email"`
	UserPassword string `json:"user_password"`
}

// LoginToken is returned by /user/login.
type LoginToken struct {
	Token string `json:"token"`
}

// CalendarEvent is one entry on a calendar day.
type CalendarEvent struct {
	Content string `json:"content"`
	ID      string `json:"id"`
	Class   string `json:"class"`
}

// CalendarDay groups the events of one day of a month.
type CalendarDay struct {
	Day    int             `json:"day"`
	Events []CalendarEvent `json:"events"`
}
