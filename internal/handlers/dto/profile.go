package dto

type ProfileRequest struct {
	Bio            string `json:"bio" binding:"required"`
	Location       string `json:"location" binding:"required"`
	Status         string `json:"status"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Facebook       string `json:"facebook"`
	Twitter        string `json:"twitter"`
	Instagram      string `json:"instagram"`
	Linkedin       string `json:"linkedin"`
}

func (ProfileRequest) Messages() map[string]string {
	return map[string]string{
		"bio":      "Bio Is Required",
		"location": "Location Is Required",
	}
}
