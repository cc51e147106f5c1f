package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/ptfview/internal/contour"
	"github.com/samcharles93/ptfview/internal/familystore"
	"github.com/samcharles93/ptfview/internal/logger"
	"github.com/samcharles93/ptfview/pkg/ptf"
)

type Server struct {
	store *familystore.Store
	log   logger.Logger
}

func NewServer(store *familystore.Store, log logger.Logger) *Server {
	if store == nil {
		store = familystore.New(familystore.Config{})
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		store: store,
		log:   log,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/families", s.handleOpenFamily)
	e.GET("/v1/families", s.handleListFamilies)
	e.GET("/v1/families/:id", s.handleGetFamily)
	e.DELETE("/v1/families/:id", s.handleCloseFamily)

	e.GET("/v1/families/:id/states", s.handleListStates)
	e.GET("/v1/families/:id/states/:seq", s.handleGetState)
	e.GET("/v1/families/:id/states/:seq/displacement", s.handleDisplacement)

	e.GET("/v1/families/:id/parts", s.handleListParts)
	e.GET("/v1/families/:id/parts/:n", s.handleGetPart)
	e.GET("/v1/families/:id/parts/:n/mesh", s.handlePartMesh)

	e.GET("/v1/families/:id/bounds", s.handleBounds)
}

func (s *Server) handleOpenFamily(c *echo.Context) error {
	req, err := decodeJSON[OpenFamilyRequest](c.Request().Body)
	if err != nil {
		return writeErr(c, err)
	}
	if strings.TrimSpace(req.Path) == "" {
		return writeBadRequest(c, "path is required")
	}

	ctx := c.Request().Context()
	info, err := s.store.Open(ctx, req.Path)
	if err != nil {
		s.log.Warn("open family failed", "path", req.Path, "error", err)
		return writeErr(c, err)
	}
	s.log.Info("family open", "id", info.ID, "path", info.Path)

	resp, err := s.familyResp(c, info)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) familyResp(c *echo.Context, info familystore.Info) (FamilyResp, error) {
	resp := FamilyResp{
		ID:       info.ID,
		Object:   "family",
		Path:     info.Path,
		OpenedAt: info.OpenedAt,
	}
	err := s.store.WithFamily(c.Request().Context(), info.ID, func(f *ptf.Family) error {
		resp.Summary = f.Summary()
		return nil
	})
	return resp, err
}

func (s *Server) handleListFamilies(c *echo.Context) error {
	out := FamilyList{
		Object: "list",
		Data:   []FamilyResp{},
	}
	for _, info := range s.store.List() {
		resp, err := s.familyResp(c, info)
		if err != nil {
			// closed between List and WithFamily
			continue
		}
		out.Data = append(out.Data, resp)
	}
	available, err := s.store.Available()
	if err != nil {
		s.log.Warn("scan data directory failed", "error", err)
	}
	out.Available = available
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetFamily(c *echo.Context) error {
	info, err := s.store.Get(c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	resp, err := s.familyResp(c, info)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleCloseFamily(c *echo.Context) error {
	id := c.Param("id")
	if err := s.store.Close(id); err != nil {
		if status, _ := classify(err); status == http.StatusNotFound {
			return writeNotFound(c, "family not found")
		}
		return writeErr(c, err)
	}
	s.log.Info("family closed", "id", id)
	return c.JSON(http.StatusOK, DeleteFamilyResp{
		ID:      id,
		Object:  "family",
		Deleted: true,
	})
}

func (s *Server) handleListStates(c *echo.Context) error {
	limit, limited, err := intQuery(c, "limit")
	if err != nil {
		return writeErr(c, err)
	}
	out := StateList{Object: "list"}
	err = s.store.WithFamily(c.Request().Context(), c.Param("id"), func(f *ptf.Family) error {
		out.Data = f.States()
		if limited && limit < len(out.Data) {
			out.Data = out.Data[:limit]
			out.HasMore = true
		}
		return nil
	})
	if err != nil {
		return writeErr(c, err)
	}
	if out.Data == nil {
		out.Data = []ptf.StateDescriptor{}
	}
	return c.JSON(http.StatusOK, out)
}

// readState resolves the :seq parameter and copies the state's coordinates
// out of the family's shared buffer while the family is held.
func (s *Server) readState(c *echo.Context, fn func(f *ptf.Family, d ptf.StateDescriptor, coords []float32) error) error {
	seq, err := intParam(c, "seq")
	if err != nil {
		return err
	}
	return s.store.WithFamily(c.Request().Context(), c.Param("id"), func(f *ptf.Family) error {
		d, err := f.StateDescriptor(seq - 1)
		if err != nil {
			return err
		}
		coords, err := f.ReadState(d)
		if err != nil {
			return err
		}
		return fn(f, d, coords)
	})
}

func (s *Server) handleGetState(c *echo.Context) error {
	var out StateResp
	err := s.readState(c, func(_ *ptf.Family, d ptf.StateDescriptor, coords []float32) error {
		out = StateResp{
			Object:          "state",
			StateDescriptor: d,
			Coords:          append([]float32(nil), coords...),
		}
		return nil
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleDisplacement(c *echo.Context) error {
	comp, err := contour.ParseComponent(strings.ToLower(c.QueryParam("component")))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_request_error", err.Error(), "component")
	}

	var out DisplacementResp
	err = s.readState(c, func(f *ptf.Family, d ptf.StateDescriptor, coords []float32) error {
		values := contour.Displacement(nil, f.Geometry().Coords, coords, comp)
		scale := contour.NewScale(contour.Displacement(nil, f.Geometry().Coords, coords, contour.Resultant))
		out = DisplacementResp{
			Object:    "displacement",
			Sequence:  d.Sequence,
			Time:      d.Time,
			Component: comp.String(),
			Values:    values,
			Max:       scale.Max(),
			Levels:    scale.Levels,
		}
		return nil
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func partResp(p ptf.Part, withElements bool) PartResp {
	out := PartResp{
		Object:       "part",
		Index:        p.Index,
		ElementCount: len(p.Elements),
		Colour:       contour.PartColour(p.Index),
	}
	if len(p.Elements) > 0 {
		out.Type = p.Type.String()
	}
	if withElements {
		out.Elements = append([]int(nil), p.Elements...)
	}
	return out
}

func (s *Server) handleListParts(c *echo.Context) error {
	out := PartList{Object: "list", Data: []PartResp{}}
	err := s.store.WithFamily(c.Request().Context(), c.Param("id"), func(f *ptf.Family) error {
		for _, p := range f.Parts() {
			out.Data = append(out.Data, partResp(p, false))
		}
		return nil
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetPart(c *echo.Context) error {
	n, err := intParam(c, "n")
	if err != nil {
		return writeErr(c, err)
	}
	var out PartResp
	err = s.store.WithFamily(c.Request().Context(), c.Param("id"), func(f *ptf.Family) error {
		p, err := f.Part(n)
		if err != nil {
			return err
		}
		out = partResp(p, true)
		return nil
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// handlePartMesh returns two triangles per shell of the part. With ?state=
// the mesh follows that state's coordinates; ?contour= colours it by the
// chosen displacement component instead of the part colour.
func (s *Server) handlePartMesh(c *echo.Context) error {
	n, err := intParam(c, "n")
	if err != nil {
		return writeErr(c, err)
	}
	seq, hasState, err := intQuery(c, "state")
	if err != nil {
		return writeErr(c, err)
	}
	contourParam := strings.ToLower(strings.TrimSpace(c.QueryParam("contour")))
	var comp contour.Component
	if contourParam != "" {
		if !hasState {
			return writeError(c, http.StatusBadRequest, "invalid_request_error", "contour requires state", "contour")
		}
		if comp, err = contour.ParseComponent(contourParam); err != nil {
			return writeError(c, http.StatusBadRequest, "invalid_request_error", err.Error(), "contour")
		}
	}

	out := MeshResp{Object: "mesh", Part: n}
	err = s.store.WithFamily(c.Request().Context(), c.Param("id"), func(f *ptf.Family) error {
		p, err := f.Part(n)
		if err != nil {
			return err
		}
		coords := f.Geometry().Coords
		shade := contour.Flat(contour.PartColour(p.Index))
		if hasState {
			d, err := f.StateDescriptor(seq - 1)
			if err != nil {
				return err
			}
			if coords, err = f.ReadState(d); err != nil {
				return err
			}
			out.Sequence = d.Sequence
			if contourParam != "" {
				values := contour.Displacement(nil, f.Geometry().Coords, coords, comp)
				scale := contour.NewScale(contour.Displacement(nil, f.Geometry().Coords, coords, contour.Resultant))
				shade = scale.Nodal(values)
				out.Contour = comp.String()
			}
		}
		out.Vertices = contour.ShellMesh(make([]contour.Vertex, 0, len(p.Elements)*6), f.Geometry(), coords, p.Elements, shade)
		return nil
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) handleBounds(c *echo.Context) error {
	seq, hasState, err := intQuery(c, "state")
	if err != nil {
		return writeErr(c, err)
	}
	var out BoundsResp
	err = s.store.WithFamily(c.Request().Context(), c.Param("id"), func(f *ptf.Family) error {
		b := f.Bounds()
		if hasState {
			if seq < 1 {
				return fmt.Errorf("%w: state sequence starts at 1", ptf.ErrIndexOutOfRange)
			}
			sb, err := f.StateBounds(seq - 1)
			if err != nil {
				return err
			}
			b = sb
			out.Sequence = seq
		}
		out.Object = "bounds"
		out.Min, out.Max = b.Min, b.Max
		out.Centre, out.Diagonal = b.Centre(), b.Diagonal()
		return nil
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
