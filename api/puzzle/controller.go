package puzzleapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/rabbit-run/game"
	"github.com/beka-birhanu/rabbit-run/game/maze"
	"github.com/beka-birhanu/rabbit-run/service"
	"github.com/beka-birhanu/rabbit-run/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PuzzleController handles HTTP requests for puzzles.
type PuzzleController struct {
	puzzles i.PuzzleManager
}

// NewPuzzleController initializes a PuzzleController.
func NewPuzzleController(pm i.PuzzleManager) (*PuzzleController, error) {
	if pm == nil {
		return nil, errors.New("puzzle controller needs a puzzle manager")
	}
	return &PuzzleController{puzzles: pm}, nil
}

// RegisterPublic registers public routes.
func (pc *PuzzleController) RegisterPublic(route *gin.RouterGroup) {
	puzzles := route.Group("/puzzles")
	{
		puzzles.POST("", pc.create)
		puzzles.GET("/:ID", pc.get)
		puzzles.DELETE("/:ID", pc.delete)
		puzzles.POST("/:ID/actions", pc.act)
	}
}

// create handles puzzle generation requests.
func (pc *PuzzleController) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	p, err := pc.puzzles.Create(ctx.Request.Context(), i.PuzzleRequest{
		Size:    request.Size,
		Carrots: request.Carrots,
		Holes:   request.Holes,
		Seed:    request.Seed,
	})
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	_, state, err := pc.puzzles.Get(p.ID)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, newPuzzleResponse(p, state))
}

// get returns a puzzle and its current state.
func (pc *PuzzleController) get(ctx *gin.Context) {
	id, ok := puzzleID(ctx)
	if !ok {
		return
	}

	p, state, err := pc.puzzles.Get(id)
	if err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, newPuzzleResponse(p, state))
}

// act applies one player action.
func (pc *PuzzleController) act(ctx *gin.Context) {
	id, ok := puzzleID(ctx)
	if !ok {
		return
	}

	var request ActionRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := pc.puzzles.Act(id, request.Action)
	if err != nil {
		resp := ErrorResponse{Error: err.Error()}
		if errors.Is(err, game.ErrInvalidMove) || errors.Is(err, game.ErrNoCarrot) {
			resp.State = &state
		}
		ctx.JSON(statusFor(err), resp)
		return
	}

	ctx.JSON(http.StatusOK, state)
}

// delete drops a puzzle.
func (pc *PuzzleController) delete(ctx *gin.Context) {
	id, ok := puzzleID(ctx)
	if !ok {
		return
	}

	if err := pc.puzzles.Delete(id); err != nil {
		ctx.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// puzzleID parses the ID path parameter and answers 400 when it is malformed.
func puzzleID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid puzzle id"})
		return uuid.Nil, false
	}
	return id, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrPuzzleNotFound):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrInvalidConfiguration),
		errors.Is(err, service.ErrSizeTooLarge),
		errors.Is(err, game.ErrInvalidMove),
		errors.Is(err, game.ErrNoCarrot),
		errors.Is(err, game.ErrUnknownAction):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
