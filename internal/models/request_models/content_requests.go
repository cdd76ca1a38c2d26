package request_models

type HeroUpdateRequest struct {
	Title             string `json:"title" binding:"required"`
	Subtitle          string `json:"subtitle" binding:"required"`
	Description       string `json:"description" binding:"required"`
	WhatsappNumber    string `json:"whatsappNumber"`
	DiscordInviteLink string `json:"discord_invite_link"`
}

type FeatureRequest struct {
	Icon        string `json:"icon" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type TestimonialRequest struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating"`
}

type FAQRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}
