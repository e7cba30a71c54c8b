package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"faucet/backend/internal/model"
	"faucet/backend/internal/service"
)

type NetworkHandler struct {
	networks service.NetworkRegistry
}

type networkResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ChainID        int64  `json:"chainId"`
	FaucetAmount   string `json:"faucetAmount"`
	NativeCurrency string `json:"nativeCurrency"`
	ExplorerURL    string `json:"explorerUrl"`
	IconURL        string `json:"iconUrl,omitempty"`
	IsActive       bool   `json:"isActive"`
}

func NewNetworkHandler(networks service.NetworkRegistry) *NetworkHandler {
	return &NetworkHandler{networks: networks}
}

func (h *NetworkHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/networks", h.List)
}

func (h *NetworkHandler) List(c echo.Context) error {
	networks := h.networks.ListActive()
	response := make([]networkResponse, 0, len(networks))
	for _, network := range networks {
		response = append(response, toNetworkResponse(network))
	}
	return c.JSON(http.StatusOK, response)
}

func toNetworkResponse(network model.NetworkConfig) networkResponse {
	return networkResponse{
		ID:             network.ID,
		Name:           network.Name,
		ChainID:        network.ChainID,
		FaucetAmount:   network.FaucetAmount,
		NativeCurrency: network.NativeCurrency,
		ExplorerURL:    network.ExplorerURL,
		IconURL:        network.IconURL,
		IsActive:       network.IsActive,
	}
}
