package response_models

type AdminUserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  AdminUserInfo `json:"user"`
}
