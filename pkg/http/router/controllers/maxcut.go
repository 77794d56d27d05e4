package controllers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/grasp-maxcut/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/grasp-maxcut/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type maxCutAPI struct {
	maxCutService MaxCutService
	hub           *Hub
	log           *zap.Logger
	maxBodyBytes  int64
}

func New(maxCutService MaxCutService, hub *Hub, log *zap.Logger) *maxCutAPI {
	viper.SetDefault("API_MAX_BODY_BYTES", 64<<20)

	return &maxCutAPI{
		maxCutService: maxCutService,
		hub:           hub,
		log:           log,
		maxBodyBytes:  viper.GetInt64("API_MAX_BODY_BYTES"),
	}
}

func (api *maxCutAPI) Routes(group *helper.RouteGroup) {
	maxcut := group.Group("/maxcut")
	maxcut.POST("/grasp", api.grasp)
	maxcut.POST("/cut", api.cutValue)
	maxcut.GET("/ws", api.graspProgress)
}

func (api *maxCutAPI) grasp(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request graspRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := util.ValidateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	graph, err := api.maxCutService.BuildGraph(request.Graph.NumVertices, request.Graph.toEdges())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	res, err := api.maxCutService.Solve(r.Context(), graph, request.Config.toConfig())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewGraspResponse(res)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *maxCutAPI) cutValue(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request cutRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := util.ValidateStruct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	graph, err := api.maxCutService.BuildGraph(request.Graph.NumVertices, request.Graph.toEdges())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	cut, err := api.maxCutService.CutValue(graph, request.inX())
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": cutResponse{CutValue: cut}}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
