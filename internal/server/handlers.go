package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const WelcomeMessage = "Welcome to your Python Flask API!"

type MessageResponse struct {
	Message string `json:"message"`
}

func handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: WelcomeMessage})
}
