/*
Package gui is a pure go, retained-mode GUI widget toolkit, drawing through a
devdraw backend.

Start with NewGUI to create a GUI: essentially a window and all the UI state,
with an empty Container at the top of the widget tree. Add widgets to the
container with Add, by name, and they are drawn in that order: widgets added
later are in front. Get, Remove, MoveToFront and MoveToBack manage them.

The user interface consists of a hierarchy of "UIs" like Container, Box,
Button, Checkbox, Picture, etc. They are called UIs, after the interface UI
they all implement. The zero structs for UIs have sane default behaviour so
you only have to fill in the fields you need.

UIs are kept/wrapped in a Kid, to track their layout/draw state. Use NewKids()
to build up the UIs for nested layouts. You won't see much of the
Kid-types/functions otherwise, unless you implement a new UI.

You are in charge of the main event loop, receiving mouse/keyboard/window
events from the Inputs channel, and typically passing them on unchanged to
Input. All callbacks and functions on UIs are called from inside Input. From
there you can also safely change the UIs, no locking required. After changing
a UI you are responsible for calling MarkLayout or MarkDraw to tell the GUI
the UI needs a new layout or draw. If you need to change the UI from a
goroutine outside of the main loop, e.g. for blocking calls, you can send a
function that makes those modifications on the Call channel, which will be
run on the main loop through Inputs. After handling an input, the GUI will
layout or draw as necessary.

Pictures show image files. They are loaded through the GUI's TextureManager,
a reference-counting cache by file path: two pictures loading the same file
share one texture, and the texture is freed when the last picture holding it
is unloaded. Transparent pixels of a picture are not clickable: in a
container, such clicks fall through to the widget behind.

Colors come from a Theme, applied with SetTheme. ReadTheme reads one from a
TOML file, and WatchTheme applies the file on every change, for live tweaking.
*/
package gui
