/*
 * server.go, part of gokin.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package estimatortest provides an in-process estimator that answers with canned responses.
package estimatortest

import (
	"bufio"
	"bytes"
	"errors"
	"net"
	"strings"
	"sync"
)

//Handler returns the response for a request. The request includes its END line.
type Handler func(req []byte) []byte

//Static is a Handler that always answers resp.
func Static(resp string) Handler {
	return func([]byte) []byte {
		return []byte(resp)
	}
}

//Server is a fake estimator listening on TCP.
type Server struct {
	ln      net.Listener
	handler Handler
	wg      sync.WaitGroup
	mu      sync.Mutex
	reqs    [][]byte
}

//NewServer starts a fake estimator on a free port of the loopback interface.
func NewServer(handler Handler) (*Server, error) {
	return Listen("127.0.0.1:0", handler)
}

//Listen starts a fake estimator on addr.
func Listen(addr string, handler Handler) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	S := &Server{ln: ln, handler: handler}
	S.wg.Add(1)
	go S.serve()
	return S, nil
}

//Addr returns the host:port where the server listens.
func (S *Server) Addr() string {
	return S.ln.Addr().String()
}

//Requests returns the requests received so far, in order.
func (S *Server) Requests() [][]byte {
	S.mu.Lock()
	defer S.mu.Unlock()
	ret := make([][]byte, len(S.reqs))
	copy(ret, S.reqs)
	return ret
}

//Close stops the server and waits for the open connections to be answered.
func (S *Server) Close() error {
	err := S.ln.Close()
	S.wg.Wait()
	return err
}

func (S *Server) serve() {
	defer S.wg.Done()
	for {
		conn, err := S.ln.Accept()
		if errors.Is(err, net.ErrClosed) {
			return
		}
		if err != nil {
			continue
		}
		S.wg.Add(1)
		go func() {
			defer S.wg.Done()
			S.answer(conn)
		}()
	}
}

//answer reads one request, up to its END line, and writes the response. The connection is closed
//afterwards, which tells the client the response is complete.
func (S *Server) answer(conn net.Conn) {
	defer conn.Close()
	var req bytes.Buffer
	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		req.WriteString(line)
		if strings.TrimSpace(line) == "END" || err != nil {
			break
		}
	}
	S.mu.Lock()
	S.reqs = append(S.reqs, req.Bytes())
	S.mu.Unlock()
	conn.Write(S.handler(req.Bytes()))
}
