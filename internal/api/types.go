package api

// Wire types for the Kavprime backend. Field names and JSON tags follow
// the backend's snake_case contract exactly; timestamps stay strings
// because the client never owns them, it only displays and sorts.

type Ticket struct {
	ID          int    `json:"id"`
	EmployeeID  int    `json:"employee_id"`
	TicketType  string `json:"ticket_type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	WorkflowID  *int   `json:"workflow_id,omitempty"`
	CurrentStep int    `json:"current_step,omitempty"`
	CurrentRole string `json:"current_role,omitempty"`
	AssignedTo  int    `json:"assigned_to,omitempty"`
}

type TicketStep struct {
	StepOrder  int    `json:"step_order"`
	Role       string `json:"role"`
	SLAHours   int    `json:"sla_hours"`
	State      string `json:"state"`
	ActionDate string `json:"action_date"`
	Remarks    string `json:"remarks"`
}

// TicketHistory is a read-only projection: the ticket plus its ordered
// approval steps. The client never mutates step records.
type TicketHistory struct {
	TicketID    int          `json:"ticket_id"`
	EmployeeID  int          `json:"employee_id"`
	TicketType  string       `json:"ticket_type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      string       `json:"status"`
	WorkflowID  int          `json:"workflow_id"`
	CurrentStep int          `json:"current_step"`
	CreatedAt   string       `json:"created_at"`
	Steps       []TicketStep `json:"steps"`
}

type AssignedUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EmployeeInfo struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AssignedTicket is the enriched row shown on approver dashboards.
type AssignedTicket struct {
	TicketID    int          `json:"ticket_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	TicketType  string       `json:"ticket_type"`
	Status      string       `json:"status"`
	CurrentStep int          `json:"current_step"`
	CurrentRole string       `json:"current_role"`
	WorkflowID  *int         `json:"workflow_id"`
	AssignedTo  AssignedUser `json:"assigned_to"`
	Employee    EmployeeInfo `json:"employee"`
}

type CreateTicketRequest struct {
	EmployeeID      int    `json:"employee_id"`
	TicketType      string `json:"ticket_type"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	AssignedTo      int    `json:"assigned_to,omitempty"`
	AssignedToEmail string `json:"assigned_to_email,omitempty"`
	Role            string `json:"role,omitempty"`
}

type CreateTicketResponse struct {
	Message  string `json:"message"`
	Remarks  string `json:"remarks"`
	TicketID int    `json:"ticket_id"`
}

// ActionRequest advances a ticket one workflow step. It is a write
// payload only, never a stored entity. The action verb is normalized to
// upper case before it leaves the client; the backend's case handling is
// unverified, so we send one consistent form.
type ActionRequest struct {
	TicketID     int               `json:"ticket_id"`
	Action       string            `json:"action"`
	Remarks      string            `json:"remarks"`
	RoleEmailMap map[string]string `json:"role_email_map,omitempty"`
	Role         string            `json:"role,omitempty"`
}

type ActionResponse struct {
	Action       string            `json:"action"`
	TicketID     int               `json:"ticket_id"`
	Remarks      string            `json:"remarks"`
	RoleEmailMap map[string]string `json:"role_email_map"`
	Role         string            `json:"role"`
}

type AssignedTicketsResponse struct {
	Message string           `json:"message"`
	Tickets []AssignedTicket `json:"tickets"`
	Total   int              `json:"total"`
}

type UpdateTicketStatusRequest struct {
	EmployeeID int    `json:"employee_id"`
	Status     string `json:"status"`
}

// EmployeeDashboardResponse is the landing-screen summary: who the
// viewer is plus their ticket and asset counts, bucketed by status.
type EmployeeDashboardResponse struct {
	Type     string          `json:"type"`
	Employee EmployeeInfo    `json:"employee"`
	Tickets  DashboardTicket `json:"tickets"`
	Assets   DashboardAsset  `json:"assets"`
}

type DashboardTicket struct {
	TotalCreated int            `json:"total_created"`
	ByStatus     map[string]int `json:"by_status"`
}

type DashboardAsset struct {
	TotalAssetsRows     int            `json:"total_assets_rows"`
	TotalQuantityIssued int            `json:"total_quantity_issued"`
	ByStatus            map[string]int `json:"by_status"`
}

type Role struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type CreateRoleResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Created bool   `json:"created"`
}

type WorkflowStep struct {
	StepOrder int    `json:"step_order,omitempty"`
	Role      string `json:"role"`
	SLAHours  int    `json:"sla_hours"`
}

type Workflow struct {
	WorkflowID   int            `json:"workflow_id"`
	TicketType   string         `json:"ticket_type"`
	Version      int            `json:"version"`
	WorkflowName string         `json:"workflow_name"`
	Description  string         `json:"description"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    string         `json:"created_at"`
	Steps        []WorkflowStep `json:"steps"`
}

type CreateWorkflowRequest struct {
	TicketType   string         `json:"ticket_type,omitempty"`
	Version      string         `json:"version"`
	WorkflowName string         `json:"workflow_name"`
	Description  string         `json:"description"`
	Steps        []WorkflowStep `json:"steps"`
}

type CreateWorkflowResponse struct {
	WorkflowID   int    `json:"workflow_id"`
	WorkflowName string `json:"workflow_name"`
	Version      int    `json:"version"`
	IsActive     bool   `json:"is_active"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	UserID      int    `json:"user_id"`
	Role        string `json:"role"`
	RedirectURL string `json:"redirect_url"`
}

type User struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	Designation      string `json:"designation,omitempty"`
	EmploymentStatus string `json:"employment_status,omitempty"`
	JoinDate         string `json:"join_date,omitempty"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type RegisterRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role,omitempty"`
	Designation      string `json:"designation,omitempty"`
	EmploymentStatus string `json:"employment_status,omitempty"`
	JoinDate         string `json:"join_date,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
	Role    string `json:"role"`
}

type UpdateUserRequest struct {
	ID               int    `json:"id"`
	Name             string `json:"name,omitempty"`
	Role             string `json:"role,omitempty"`
	Designation      string `json:"designation,omitempty"`
	EmploymentStatus string `json:"employment_status,omitempty"`
	JoinDate         string `json:"join_date,omitempty"`
}

type InventoryItem struct {
	ID                   int    `json:"id"`
	ItemCode             string `json:"item_code"`
	ItemName             string `json:"item_name"`
	Category             string `json:"category"`
	Brand                string `json:"brand"`
	Model                string `json:"model"`
	Description          string `json:"description"`
	TotalQuantity        int    `json:"total_quantity"`
	AvailableQuantity    int    `json:"available_quantity"`
	IssuedQuantity       int    `json:"issued_quantity"`
	MinimumStockLevel    int    `json:"minimum_stock_level"`
	Status               string `json:"status"` // AVAILABLE | LOW_STOCK | OUT_OF_STOCK
	PurchaseDate         string `json:"purchase_date"`
	PurchasePricePerItem string `json:"purchase_price_per_item"`
	VendorName           string `json:"vendor_name"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
	AttachmentURL        string `json:"attachment_url,omitempty"`
}

type AddInventoryRequest struct {
	ItemCode             string  `json:"item_code"`
	ItemName             string  `json:"item_name"`
	Category             string  `json:"category"`
	Brand                string  `json:"brand"`
	Model                string  `json:"model"`
	Description          string  `json:"description"`
	TotalQuantity        int     `json:"total_quantity"`
	MinimumStockLevel    int     `json:"minimum_stock_level"`
	PurchaseDate         string  `json:"purchase_date"`
	PurchasePricePerItem float64 `json:"purchase_price_per_item"`
	VendorName           string  `json:"vendor_name"`
}

type AddInventoryResponse struct {
	Message     string `json:"message"`
	InventoryID int    `json:"inventory_id"`
}

type UpdateInventoryRequest struct {
	ID                   int      `json:"id"`
	ItemCode             string   `json:"item_code,omitempty"`
	ItemName             string   `json:"item_name,omitempty"`
	Category             string   `json:"category,omitempty"`
	Brand                string   `json:"brand,omitempty"`
	Model                string   `json:"model,omitempty"`
	Description          string   `json:"description,omitempty"`
	TotalQuantity        *int     `json:"total_quantity,omitempty"`
	MinimumStockLevel    *int     `json:"minimum_stock_level,omitempty"`
	PurchaseDate         string   `json:"purchase_date,omitempty"`
	PurchasePricePerItem *float64 `json:"purchase_price_per_item,omitempty"`
	VendorName           string   `json:"vendor_name,omitempty"`
}

type UpdateInventoryResponse struct {
	Message           string `json:"message"`
	InventoryID       int    `json:"inventory_id"`
	TotalQuantity     int    `json:"total_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
	IssuedQuantity    int    `json:"issued_quantity"`
	Status            string `json:"status"`
}

type IssueInventoryRequest struct {
	InventoryID    int `json:"inventory_id"`
	EmployeeID     int `json:"employee_id"`
	IssuedByID     int `json:"issued_by_id"`
	QuantityIssued int `json:"quantity_issued"`
}

type IssueInventoryResponse struct {
	Message           string `json:"message"`
	AssetID           int    `json:"asset_id"`
	RemainingQuantity int    `json:"remaining_quantity"`
}

type AssetDetail struct {
	ID                 int    `json:"id"`
	InventoryID        int    `json:"inventory_id"`
	InventoryName      string `json:"inventory_name"`
	InventoryCode      string `json:"inventory_code"`
	Brand              string `json:"brand"`
	Model              string `json:"model"`
	EmployeeID         int    `json:"employee_id"`
	EmployeeName       string `json:"employee_name"`
	EmployeeEmail      string `json:"employee_email"`
	QuantityIssued     int    `json:"quantity_issued"`
	QuantityIssuedDate string `json:"quantity_issued_date"`
	ReturnDate         string `json:"return_date,omitempty"`
	Status             string `json:"status"` // ISSUED | RETURNED | DAMAGED
	Remarks            string `json:"remarks,omitempty"`
	IssuedByID         int    `json:"issued_by_id"`
	IssuedByName       string `json:"issued_by_name"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

type AssetsResponse struct {
	TotalAssets int           `json:"total_assets"`
	Assets      []AssetDetail `json:"assets"`
}

type EmployeeAssetsResponse struct {
	EmployeeID    int           `json:"employee_id"`
	EmployeeName  string        `json:"employee_name"`
	EmployeeEmail string        `json:"employee_email"`
	TotalAssets   int           `json:"total_assets"`
	Assets        []AssetDetail `json:"assets"`
}

type InventoryAssetsResponse struct {
	InventoryID   int           `json:"inventory_id"`
	InventoryName string        `json:"inventory_name"`
	InventoryCode string        `json:"inventory_code"`
	TotalIssued   int           `json:"total_issued"`
	TotalAssets   int           `json:"total_assets"`
	Assets        []AssetDetail `json:"assets"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
