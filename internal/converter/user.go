package converter

import (
	authDto "reviewmap_backend/internal/api/dto/auth"
	userDto "reviewmap_backend/internal/api/dto/user"
	"reviewmap_backend/internal/model"
)

func RegisterRequestToUserModel(req *authDto.RegisterRequest) *model.User {
	return &model.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}
}

func ToUserResponse(user model.UserPublic) userDto.UserResponse {
	return userDto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}

func ToProfileResponse(profile *model.Profile) userDto.ProfileResponse {
	return userDto.ProfileResponse{
		ID:      profile.User.ID,
		Email:   profile.User.Email,
		Name:    profile.User.Name,
		Reviews: toReviewsWithAddress(profile.Reviews),
	}
}

func ToProfileResponses(profiles []model.Profile) []userDto.ProfileResponse {
	result := make([]userDto.ProfileResponse, len(profiles))
	for i := range profiles {
		result[i] = ToProfileResponse(&profiles[i])
	}
	return result
}
