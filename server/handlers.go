package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"plantuml_assistant/generator"
	"plantuml_assistant/render"
)

func (s *Server) callContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if s.opts.RequestTimeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), s.opts.RequestTimeout)
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := s.callContext(c)
	defer cancel()
	uml, err := s.agent.Generate(ctx, generator.GenerationRequest{
		Description: req.Description,
		DiagramType: req.DiagramType,
	})
	if err != nil {
		abortError(c, generateStatus(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, generateResp{UML: uml})
}

func (s *Server) handleRevise(c *gin.Context) {
	var req reviseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.UserMessage) == "" {
		abortError(c, http.StatusBadRequest, "userMessage is required")
		return
	}

	ctx, cancel := s.callContext(c)
	defer cancel()
	rev := s.agent.Revise(ctx, generator.RevisionRequest{
		CurrentUML:    req.CurrentUML,
		UserMessage:   req.UserMessage,
		DiagramType:   req.DiagramType,
		OriginalStory: req.OriginalStory,
	})
	if rev == nil {
		abortError(c, http.StatusBadGateway, generator.ErrRevisionFailed.Error())
		return
	}
	c.JSON(http.StatusOK, s.toReviseResp(rev))
}

func (s *Server) handleSessionCreate(c *gin.Context) {
	var req sessionCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}

	id := newSessionID()
	sess := generator.NewSession(id, req.Story, req.DiagramType, s.agent)
	ctx, cancel := s.callContext(c)
	defer cancel()
	if _, err := sess.Propose(ctx); err != nil {
		abortError(c, generateStatus(err), err.Error())
		return
	}
	s.store.set(id, sess)
	c.JSON(http.StatusOK, toSessionResp(sess, nil))
}

func (s *Server) handleSessionGet(c *gin.Context) {
	sess, ok := s.store.get(c.Param("id"))
	if !ok {
		abortError(c, http.StatusNotFound, "session not found")
		return
	}
	c.JSON(http.StatusOK, toSessionResp(sess, nil))
}

func (s *Server) handleSessionRevise(c *gin.Context) {
	sess, ok := s.store.get(c.Param("id"))
	if !ok {
		abortError(c, http.StatusNotFound, "session not found")
		return
	}
	var req sessionMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		abortError(c, http.StatusBadRequest, "message is required")
		return
	}

	ctx, cancel := s.callContext(c)
	defer cancel()
	rev, err := sess.Revise(ctx, req.Message)
	if err != nil {
		abortError(c, http.StatusBadGateway, err.Error())
		return
	}
	resp := s.toReviseResp(rev)
	c.JSON(http.StatusOK, toSessionResp(sess, &resp))
}

func (s *Server) handleTemplates(c *gin.Context) {
	types := s.opts.DiagramTypes
	if types == nil {
		types = []string{}
	}
	c.JSON(http.StatusOK, templatesResp{Types: types})
}

func (s *Server) toReviseResp(rev *generator.Revision) reviseResp {
	resp := reviseResp{UML: rev.UML, RawText: rev.RawText}
	html, err := render.ExplanationHTML(rev.RawText)
	if err != nil {
		s.log.Warn("render explanation", zap.Error(err))
		return resp
	}
	resp.RawTextHTML = html
	return resp
}

func toSessionResp(sess *generator.Session, rev *reviseResp) sessionResp {
	uml, history := sess.Snapshot()
	return sessionResp{
		SessionID:   sess.ID,
		Story:       sess.Story,
		DiagramType: sess.DiagramType,
		UML:         uml,
		History:     history,
		Revision:    rev,
	}
}
