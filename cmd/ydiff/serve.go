package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"

	"github.com/ydiff-project/ydiff"
	"github.com/ydiff-project/ydiff/encode"
	"github.com/ydiff-project/ydiff/libdiff"
	"github.com/ydiff-project/ydiff/parse"
)

// serve exposes the chunked session API over JSON-RPC on stdio so a
// host process can drive init/step/wholeDocument/cleanup and yield
// between calls on its own schedule.
func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Serve.Parse(cc, args); err != nil {
		return err
	}
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	srv := &rpcServer{mgr: ydiff.NewManager()}
	conn := jsonrpc2.NewConn(stream)
	conn.Go(ctx, srv.handle)
	<-conn.Done()
	return nil
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

type rpcServer struct {
	mgr *ydiff.Manager
}

type initParams struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

type initResult struct {
	Keys   []string     `json:"keys,omitempty"`
	Errors parse.Errors `json:"errors,omitempty"`
}

type stepParams struct {
	Key string `json:"key"`
}

func (s *rpcServer) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	switch req.Method() {
	case "session/init":
		var p initParams
		if err := json.Unmarshal(req.Params(), &p); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err))
		}
		keys, err := s.mgr.Init([]byte(p.Left), []byte(p.Right))
		if err != nil {
			// parse failures are a regular result so the host can
			// route each one to its input panel by side
			var perrs parse.Errors
			if errors.As(err, &perrs) {
				return reply(ctx, initResult{Errors: perrs}, nil)
			}
			return reply(ctx, nil, err)
		}
		if keys == nil {
			keys = []string{}
		}
		return reply(ctx, initResult{Keys: keys}, nil)

	case "session/step":
		var p stepParams
		if err := json.Unmarshal(req.Params(), &p); err != nil {
			return reply(ctx, nil, fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidParams, err))
		}
		node, err := s.mgr.Step(p.Key)
		if err != nil {
			return reply(ctx, nil, usageRPCErr(err))
		}
		raw, err := rawDiffNodes([]*libdiff.DiffNode{node})
		return reply(ctx, raw, err)

	case "session/wholeDocument":
		nodes, err := s.mgr.WholeDocument()
		if err != nil {
			return reply(ctx, nil, usageRPCErr(err))
		}
		raw, err := rawDiffNodes(nodes)
		return reply(ctx, raw, err)

	case "session/cleanup":
		s.mgr.Cleanup()
		return reply(ctx, struct{}{}, nil)

	default:
		return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
	}
}

// rawDiffNodes batch-converts a result subtree once per call rather
// than node by node.
func rawDiffNodes(nodes []*libdiff.DiffNode) (json.RawMessage, error) {
	d, err := encode.JSON(nodes)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(d), nil
}

func usageRPCErr(err error) error {
	if errors.Is(err, ydiff.ErrUsage) {
		return fmt.Errorf("%w: %v", jsonrpc2.ErrInvalidRequest, err)
	}
	return err
}
