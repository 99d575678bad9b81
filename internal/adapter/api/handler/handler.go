package handler

import (
	"influmarket/internal/usecase"
)

var (
	authHandler     *AuthHandler
	userHandler     *UserHandler
	campaignHandler *CampaignHandler
	proposalHandler *ProposalHandler
	chatHandler     *ChatHandler
	fileHandler     *FileHandler
	exportHandler   *ExportHandler
	adminHandler    *AdminHandler
	nicheHandler    *NicheHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	campaignUseCase *usecase.CampaignUseCase,
	proposalUseCase *usecase.ProposalUseCase,
	chatUseCase *usecase.ChatUseCase,
	exportUseCase *usecase.ExportUseCase,
	adminUseCase *usecase.AdminUseCase,
	nicheUseCase *usecase.NicheUseCase,
	fileUseCase *usecase.FileUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	campaignHandler = NewCampaignHandler(campaignUseCase)
	proposalHandler = NewProposalHandler(proposalUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	fileHandler = NewFileHandler(userUseCase, fileUseCase)
	exportHandler = NewExportHandler(exportUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	nicheHandler = NewNicheHandler(nicheUseCase)
}

func GetAuthHandler() *AuthHandler         { return authHandler }
func GetUserHandler() *UserHandler         { return userHandler }
func GetCampaignHandler() *CampaignHandler { return campaignHandler }
func GetProposalHandler() *ProposalHandler { return proposalHandler }
func GetChatHandler() *ChatHandler         { return chatHandler }
func GetFileHandler() *FileHandler         { return fileHandler }
func GetExportHandler() *ExportHandler     { return exportHandler }
func GetAdminHandler() *AdminHandler       { return adminHandler }
func GetNicheHandler() *NicheHandler       { return nicheHandler }
