package contract

type DataSourceRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type DataSourceResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
