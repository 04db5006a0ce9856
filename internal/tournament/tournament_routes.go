package tournament

import "github.com/gin-gonic/gin"

// RegisterRoutes sets up all tournament and player routes
func RegisterRoutes(router *gin.RouterGroup, tc *TournamentController) {
	router.POST("/addTournament", tc.CreateTournament)
	router.GET("/getTournaments", tc.GetAllTournaments)
	router.GET("/getTournament", tc.GetTournament)
	router.PUT("/updateTournament", tc.UpdateTournament)
	router.DELETE("/removeTournament", tc.DeleteTournament)

	router.POST("/addPlayerIntoTournament", tc.AddPlayer)
	router.DELETE("/removePlayerFromTournament", tc.RemovePlayer)
	router.GET("/getPlayersInTournament", tc.GetPlayers)
}
