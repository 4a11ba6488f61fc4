package handlers

import (
	"net/http"
)

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, user, http.StatusOK)
}

func (h *Handlers) FollowUser(w http.ResponseWriter, r *http.Request) {
	followerID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	followingID, err := pathID(r, "followingId")
	if err != nil {
		WriteError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	follow, err := h.UserService.FollowUser(r.Context(), followerID, followingID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, follow, http.StatusCreated)
}

func (h *Handlers) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	followers, err := h.UserService.GetFollowers(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, followers, http.StatusOK)
}

func (h *Handlers) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		WriteError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	following, err := h.UserService.GetFollowing(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, following, http.StatusOK)
}

func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	page, size := pageParams(r)

	users, err := h.UserService.SearchUsers(r.Context(), keyword, page, size)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, users, http.StatusOK)
}
