package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

type SshListener struct {
	addr    string
	cm      *ConnectionManager
	hostKey ssh.Signer

	ready chan struct{}
	bound net.Addr
}

// NewSshListener serves console sessions on addr to any client. No
// authentication is required.
func NewSshListener(addr string, cm *ConnectionManager, hostKey ssh.Signer) *SshListener {
	return &SshListener{
		addr:    addr,
		cm:      cm,
		hostKey: hostKey,
		ready:   make(chan struct{}),
	}
}

// Addr waits until the listener is bound and returns its address.
func (l *SshListener) Addr(ctx context.Context) (net.Addr, error) {
	select {
	case <-l.ready:
		return l.bound, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *SshListener) Start(ctx context.Context) error {
	config := &ssh.ServerConfig{
		NoClientAuth: true,
	}
	config.AddHostKey(l.hostKey)

	ln, err := net.Listen("tcp", l.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", l.addr, err)
	}
	l.bound = ln.Addr()
	close(l.ready)

	slog.InfoContext(ctx, "listening for ssh", "addr", l.bound.String())

	connCtx, cancelConns := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				cancelConns()
				wg.Wait()
				return nil
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				cancelConns()
				wg.Wait()
				return fmt.Errorf("accepting on %s: %w", l.bound, err)
			}
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			l.handleConnection(connCtx, conn, config)
		}()
	}
}

func (l *SshListener) handleConnection(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	defer conn.Close()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.ErrorContext(ctx, "ssh handshake", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer sshConn.Close()

	slog.InfoContext(ctx, "ssh connection established", "remote", conn.RemoteAddr(), "user", sshConn.User())

	// Closing the connection ends the channel loop below.
	stop := context.AfterFunc(ctx, func() { sshConn.Close() })
	defer stop()

	go ssh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}

		ch, requests, err := newChan.Accept()
		if err != nil {
			slog.ErrorContext(ctx, "accepting ssh channel", "error", err)
			continue
		}

		if !awaitShell(ctx, requests) {
			ch.Close()
			continue
		}

		l.cm.AcceptConnection(ctx, newCRLFReadWriter(ch))
		ch.Close()
	}
}

// awaitShell answers channel requests until the client asks for a shell.
// Clients do not forward input before the shell reply. Pty requests are
// refused so the client keeps local echo and line editing.
func awaitShell(ctx context.Context, requests <-chan *ssh.Request) bool {
	shell := make(chan bool, 1)
	go func() {
		opened := false
		for req := range requests {
			ok := req.Type == "shell" && !opened
			if req.WantReply {
				req.Reply(ok, nil)
			}
			if ok {
				opened = true
				shell <- true
			}
		}
		if !opened {
			shell <- false
		}
	}()

	select {
	case ok := <-shell:
		return ok
	case <-ctx.Done():
		return false
	}
}
